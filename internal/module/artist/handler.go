package artist

import (
	"github.com/gin-gonic/gin"

	"github.com/simp-lee/catalog/internal/domain"
	"github.com/simp-lee/catalog/internal/pkg"
)

// ArtistHandler handles REST API requests for the artist resource.
type ArtistHandler struct {
	svc domain.ArtistService
}

// NewArtistHandler creates a new ArtistHandler with the given service.
func NewArtistHandler(svc domain.ArtistService) *ArtistHandler {
	return &ArtistHandler{svc: svc}
}

// List handles GET /api/v1/artists.
func (h *ArtistHandler) List(c *gin.Context) {
	var req ListArtistsRequest
	if !pkg.BindQueryAndValidate(c, &req) {
		return
	}

	page := req.Page
	if page < 1 {
		page = 1
	}

	q := domain.ArtistQuery{
		Search: req.Query,
		Sort:   domain.ParseArtistSortField(req.SortBy),
		Order:  domain.ParseSortOrder(req.SortOrder),
		Page:   page,
	}

	result, err := h.svc.ListArtists(c.Request.Context(), q)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Get handles GET /api/v1/artists/:id.
func (h *ArtistHandler) Get(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	artist, err := h.svc.GetArtist(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, artist)
}
