package album

import (
	"github.com/gin-gonic/gin"

	"github.com/simp-lee/catalog/internal/domain"
	"github.com/simp-lee/catalog/internal/pkg"
)

// AlbumHandler handles REST API requests for the album resource.
type AlbumHandler struct {
	svc domain.AlbumService
}

// NewAlbumHandler creates a new AlbumHandler with the given service.
func NewAlbumHandler(svc domain.AlbumService) *AlbumHandler {
	return &AlbumHandler{svc: svc}
}

// List handles GET /api/v1/albums.
func (h *AlbumHandler) List(c *gin.Context) {
	var req ListAlbumsRequest
	if !pkg.BindQueryAndValidate(c, &req) {
		return
	}

	page := req.Page
	if page < 1 {
		page = 1
	}

	q := domain.AlbumQuery{
		Search: req.Query,
		Sort:   domain.ParseAlbumSortField(req.SortBy),
		Order:  domain.ParseSortOrder(req.SortOrder),
		Page:   page,
	}

	result, err := h.svc.ListAlbums(c.Request.Context(), q)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Get handles GET /api/v1/albums/:id.
func (h *AlbumHandler) Get(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	album, err := h.svc.GetAlbum(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, album)
}
