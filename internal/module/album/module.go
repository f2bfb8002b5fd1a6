package album

import "github.com/gin-gonic/gin"

// AlbumModule implements the app.Module interface for the album domain.
type AlbumModule struct {
	handler     *AlbumHandler
	pageHandler *AlbumPageHandler
}

// NewModule creates a new AlbumModule with the given handlers.
// Panics if h or ph is nil.
func NewModule(h *AlbumHandler, ph *AlbumPageHandler) *AlbumModule {
	if h == nil {
		panic("album.NewModule: handler must not be nil")
	}
	if ph == nil {
		panic("album.NewModule: pageHandler must not be nil")
	}
	return &AlbumModule{handler: h, pageHandler: ph}
}

// RegisterRoutes registers album API and page routes.
func (m *AlbumModule) RegisterRoutes(api *gin.RouterGroup, pages *gin.RouterGroup) {
	// API routes
	api.GET("/albums", m.handler.List)
	api.GET("/albums/:id", m.handler.Get)

	// Page routes
	pages.GET("/albums", m.pageHandler.ListPage)
	pages.GET("/albums/:id", m.pageHandler.DetailPage)
}
