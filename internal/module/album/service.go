package album

import (
	"context"

	"github.com/simp-lee/catalog/internal/domain"
	"github.com/simp-lee/catalog/internal/pkg"
)

// albumService implements domain.AlbumService.
type albumService struct {
	repo     domain.AlbumRepository
	pageSize int
}

// NewAlbumService creates a new AlbumService. pageSize is the fixed page size
// threaded from configuration; non-positive values fall back to the default.
func NewAlbumService(repo domain.AlbumRepository, pageSize int) domain.AlbumService {
	if pageSize < 1 {
		pageSize = pkg.DefaultPageSize
	}
	return &albumService{repo: repo, pageSize: pageSize}
}

// GetAlbum retrieves an album by ID.
func (s *albumService) GetAlbum(ctx context.Context, id uint) (*domain.Album, error) {
	return s.repo.GetByID(ctx, id)
}

// ListAlbums returns one page of albums matching the query.
func (s *albumService) ListAlbums(ctx context.Context, q domain.AlbumQuery) (*domain.Page[domain.Album], error) {
	return s.repo.List(ctx, q, s.pageSize)
}
