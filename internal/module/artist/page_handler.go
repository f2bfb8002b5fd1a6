package artist

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/catalog/internal/domain"
	"github.com/simp-lee/catalog/internal/pkg"
)

const listPath = "/artists"

// ArtistPageHandler handles HTML page rendering for the artist module.
type ArtistPageHandler struct {
	svc domain.ArtistService
}

// NewArtistPageHandler creates a new ArtistPageHandler with the given service.
func NewArtistPageHandler(svc domain.ArtistService) *ArtistPageHandler {
	return &ArtistPageHandler{svc: svc}
}

// ListPage renders the artist listing page.
// GET /artists
func (h *ArtistPageHandler) ListPage(c *gin.Context) {
	q := pkg.ParseArtistQuery(c)

	result, err := h.svc.ListArtists(c.Request.Context(), q)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "errors/500.html", gin.H{})
		return
	}

	links := pkg.BuildListLinks(listPath, pkg.LinkState{
		Search:    q.Search,
		SortBy:    q.Sort.String(),
		SortOrder: q.Order.String(),
	}, result.Meta())

	c.HTML(http.StatusOK, "artist/list.html", gin.H{
		"Artists":   result.Items,
		"Page":      result,
		"Links":     links,
		"BasePath":  listPath,
		"Search":    q.Search,
		"SortBy":    q.Sort.String(),
		"SortOrder": q.Order.String(),
	})
}

// DetailPage renders one artist with their albums and songs.
// GET /artists/:id
func (h *ArtistPageHandler) DetailPage(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		c.HTML(http.StatusBadRequest, "errors/400.html", gin.H{})
		return
	}

	artist, err := h.svc.GetArtist(c.Request.Context(), id)
	if err != nil {
		if domain.IsNotFound(err) {
			c.HTML(http.StatusNotFound, "errors/404.html", gin.H{})
			return
		}
		c.HTML(http.StatusInternalServerError, "errors/500.html", gin.H{})
		return
	}

	c.HTML(http.StatusOK, "artist/detail.html", gin.H{
		"Artist": artist,
	})
}
