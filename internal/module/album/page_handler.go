package album

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/catalog/internal/domain"
	"github.com/simp-lee/catalog/internal/pkg"
)

const listPath = "/albums"

// AlbumPageHandler handles HTML page rendering for the album module.
type AlbumPageHandler struct {
	svc domain.AlbumService
}

// NewAlbumPageHandler creates a new AlbumPageHandler with the given service.
func NewAlbumPageHandler(svc domain.AlbumService) *AlbumPageHandler {
	return &AlbumPageHandler{svc: svc}
}

// ListPage renders the album listing page.
// GET /albums
//
// Malformed parameters never produce an error response here: the resolver
// normalizes them and the page always renders, possibly with an empty
// result table.
func (h *AlbumPageHandler) ListPage(c *gin.Context) {
	q := pkg.ParseAlbumQuery(c)

	result, err := h.svc.ListAlbums(c.Request.Context(), q)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "errors/500.html", gin.H{})
		return
	}

	links := pkg.BuildListLinks(listPath, pkg.LinkState{
		Search:    q.Search,
		SortBy:    q.Sort.String(),
		SortOrder: q.Order.String(),
	}, result.Meta())

	c.HTML(http.StatusOK, "album/list.html", gin.H{
		"Albums":    result.Items,
		"Page":      result,
		"Links":     links,
		"BasePath":  listPath,
		"Search":    q.Search,
		"SortBy":    q.Sort.String(),
		"SortOrder": q.Order.String(),
	})
}

// DetailPage renders one album with its artists and songs.
// GET /albums/:id
func (h *AlbumPageHandler) DetailPage(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		c.HTML(http.StatusBadRequest, "errors/400.html", gin.H{})
		return
	}

	album, err := h.svc.GetAlbum(c.Request.Context(), id)
	if err != nil {
		if domain.IsNotFound(err) {
			c.HTML(http.StatusNotFound, "errors/404.html", gin.H{})
			return
		}
		c.HTML(http.StatusInternalServerError, "errors/500.html", gin.H{})
		return
	}

	c.HTML(http.StatusOK, "album/detail.html", gin.H{
		"Album": album,
	})
}
