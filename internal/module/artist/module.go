package artist

import "github.com/gin-gonic/gin"

// ArtistModule implements the app.Module interface for the artist domain.
type ArtistModule struct {
	handler     *ArtistHandler
	pageHandler *ArtistPageHandler
}

// NewModule creates a new ArtistModule with the given handlers.
// Panics if h or ph is nil.
func NewModule(h *ArtistHandler, ph *ArtistPageHandler) *ArtistModule {
	if h == nil {
		panic("artist.NewModule: handler must not be nil")
	}
	if ph == nil {
		panic("artist.NewModule: pageHandler must not be nil")
	}
	return &ArtistModule{handler: h, pageHandler: ph}
}

// RegisterRoutes registers artist API and page routes.
func (m *ArtistModule) RegisterRoutes(api *gin.RouterGroup, pages *gin.RouterGroup) {
	api.GET("/artists", m.handler.List)
	api.GET("/artists/:id", m.handler.Get)

	pages.GET("/artists", m.pageHandler.ListPage)
	pages.GET("/artists/:id", m.pageHandler.DetailPage)
}
