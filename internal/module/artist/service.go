package artist

import (
	"context"

	"github.com/simp-lee/catalog/internal/domain"
	"github.com/simp-lee/catalog/internal/pkg"
)

// artistService implements domain.ArtistService.
type artistService struct {
	repo     domain.ArtistRepository
	pageSize int
}

// NewArtistService creates a new ArtistService with the given repository and
// configured page size.
func NewArtistService(repo domain.ArtistRepository, pageSize int) domain.ArtistService {
	if pageSize < 1 {
		pageSize = pkg.DefaultPageSize
	}
	return &artistService{repo: repo, pageSize: pageSize}
}

// GetArtist retrieves an artist by ID.
func (s *artistService) GetArtist(ctx context.Context, id uint) (*domain.Artist, error) {
	return s.repo.GetByID(ctx, id)
}

// ListArtists returns one page of artists matching the query.
func (s *artistService) ListArtists(ctx context.Context, q domain.ArtistQuery) (*domain.Page[domain.Artist], error) {
	return s.repo.List(ctx, q, s.pageSize)
}
