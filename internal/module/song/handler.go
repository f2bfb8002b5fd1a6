package song

import (
	"github.com/gin-gonic/gin"

	"github.com/simp-lee/catalog/internal/domain"
	"github.com/simp-lee/catalog/internal/pkg"
)

// SongHandler handles REST API requests for the song resource.
type SongHandler struct {
	svc domain.SongService
}

// NewSongHandler creates a new SongHandler with the given service.
func NewSongHandler(svc domain.SongService) *SongHandler {
	return &SongHandler{svc: svc}
}

// List handles GET /api/v1/songs.
func (h *SongHandler) List(c *gin.Context) {
	var req ListSongsRequest
	if !pkg.BindQueryAndValidate(c, &req) {
		return
	}

	page := req.Page
	if page < 1 {
		page = 1
	}

	q := domain.SongQuery{
		Search: req.Query,
		Sort:   domain.ParseSongSortField(req.SortBy),
		Order:  domain.ParseSortOrder(req.SortOrder),
		Page:   page,
	}

	result, err := h.svc.ListSongs(c.Request.Context(), q)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Get handles GET /api/v1/songs/:id.
func (h *SongHandler) Get(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	song, err := h.svc.GetSong(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, song)
}
