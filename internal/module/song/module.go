package song

import "github.com/gin-gonic/gin"

// SongModule implements the app.Module interface for the song domain.
type SongModule struct {
	handler     *SongHandler
	pageHandler *SongPageHandler
}

// NewModule creates a new SongModule with the given handlers.
// Panics if h or ph is nil.
func NewModule(h *SongHandler, ph *SongPageHandler) *SongModule {
	if h == nil {
		panic("song.NewModule: handler must not be nil")
	}
	if ph == nil {
		panic("song.NewModule: pageHandler must not be nil")
	}
	return &SongModule{handler: h, pageHandler: ph}
}

// RegisterRoutes registers song API and page routes.
func (m *SongModule) RegisterRoutes(api *gin.RouterGroup, pages *gin.RouterGroup) {
	api.GET("/songs", m.handler.List)
	api.GET("/songs/:id", m.handler.Get)

	pages.GET("/songs", m.pageHandler.ListPage)
	pages.GET("/songs/:id", m.pageHandler.DetailPage)
}
