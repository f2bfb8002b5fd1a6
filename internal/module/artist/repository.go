package artist

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/simp-lee/catalog/internal/domain"
	"github.com/simp-lee/catalog/internal/pkg"
)

// artistRepository implements domain.ArtistRepository using GORM.
type artistRepository struct {
	db *gorm.DB
}

// NewArtistRepository creates a new ArtistRepository backed by the given GORM database.
func NewArtistRepository(db *gorm.DB) domain.ArtistRepository {
	return &artistRepository{db: db}
}

// GetByID retrieves an artist with their albums and songs.
func (r *artistRepository) GetByID(ctx context.Context, id uint) (*domain.Artist, error) {
	var artist domain.Artist
	if err := r.db.WithContext(ctx).
		Preload("Albums").
		Preload("Songs").
		First(&artist, id).Error; err != nil {
		return nil, mapError(err)
	}
	return &artist, nil
}

// List returns one page of artists matching the query. Artists only sort by
// name; the id tie-breaker stays ascending in both directions.
func (r *artistRepository) List(ctx context.Context, q domain.ArtistQuery, pageSize int) (*domain.Page[domain.Artist], error) {
	base := r.db.WithContext(ctx).Model(&domain.Artist{}).
		Scopes(searchScope(q.Search))

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, mapError(err)
	}

	dir := "ASC"
	if q.Order == domain.SortDescending {
		dir = "DESC"
	}

	var artists []domain.Artist
	if err := base.Scopes(pkg.Paginate(q.Page, pageSize)).
		Order("artists.name " + dir).
		Order("artists.id ASC").
		Find(&artists).Error; err != nil {
		return nil, mapError(err)
	}

	return pkg.NewPage(artists, total, q.Page, pageSize), nil
}

// searchScope matches artists whose name contains the term as a literal
// case-insensitive substring. An empty term matches everything.
func searchScope(term string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if term == "" {
			return db
		}
		pattern := "%" + pkg.EscapeLike(strings.ToLower(term)) + "%"
		return db.Where("LOWER(artists.name) LIKE ? ESCAPE '\\'", pattern)
	}
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return domain.NewAppError(domain.CodeInternal, "database error", err)
}
