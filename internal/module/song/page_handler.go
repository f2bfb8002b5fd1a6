package song

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/catalog/internal/domain"
	"github.com/simp-lee/catalog/internal/pkg"
)

const listPath = "/songs"

// SongPageHandler handles HTML page rendering for the song module.
type SongPageHandler struct {
	svc domain.SongService
}

// NewSongPageHandler creates a new SongPageHandler with the given service.
func NewSongPageHandler(svc domain.SongService) *SongPageHandler {
	return &SongPageHandler{svc: svc}
}

// ListPage renders the song listing page.
// GET /songs
func (h *SongPageHandler) ListPage(c *gin.Context) {
	q := pkg.ParseSongQuery(c)

	result, err := h.svc.ListSongs(c.Request.Context(), q)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "errors/500.html", gin.H{})
		return
	}

	links := pkg.BuildListLinks(listPath, pkg.LinkState{
		Search:    q.Search,
		SortBy:    q.Sort.String(),
		SortOrder: q.Order.String(),
	}, result.Meta())

	c.HTML(http.StatusOK, "song/list.html", gin.H{
		"Songs":     result.Items,
		"Page":      result,
		"Links":     links,
		"BasePath":  listPath,
		"Search":    q.Search,
		"SortBy":    q.Sort.String(),
		"SortOrder": q.Order.String(),
	})
}

// DetailPage renders one song with its album and artists.
// GET /songs/:id
func (h *SongPageHandler) DetailPage(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		c.HTML(http.StatusBadRequest, "errors/400.html", gin.H{})
		return
	}

	song, err := h.svc.GetSong(c.Request.Context(), id)
	if err != nil {
		if domain.IsNotFound(err) {
			c.HTML(http.StatusNotFound, "errors/404.html", gin.H{})
			return
		}
		c.HTML(http.StatusInternalServerError, "errors/500.html", gin.H{})
		return
	}

	c.HTML(http.StatusOK, "song/detail.html", gin.H{
		"Song": song,
	})
}
