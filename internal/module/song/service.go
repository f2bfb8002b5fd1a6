package song

import (
	"context"

	"github.com/simp-lee/catalog/internal/domain"
	"github.com/simp-lee/catalog/internal/pkg"
)

// songService implements domain.SongService.
type songService struct {
	repo     domain.SongRepository
	pageSize int
}

// NewSongService creates a new SongService with the given repository and
// configured page size.
func NewSongService(repo domain.SongRepository, pageSize int) domain.SongService {
	if pageSize < 1 {
		pageSize = pkg.DefaultPageSize
	}
	return &songService{repo: repo, pageSize: pageSize}
}

// GetSong retrieves a song by ID.
func (s *songService) GetSong(ctx context.Context, id uint) (*domain.Song, error) {
	return s.repo.GetByID(ctx, id)
}

// ListSongs returns one page of songs matching the query.
func (s *songService) ListSongs(ctx context.Context, q domain.SongQuery) (*domain.Page[domain.Song], error) {
	return s.repo.List(ctx, q, s.pageSize)
}
