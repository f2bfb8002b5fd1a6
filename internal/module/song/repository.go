package song

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/simp-lee/catalog/internal/domain"
	"github.com/simp-lee/catalog/internal/pkg"
)

// songRepository implements domain.SongRepository using GORM.
type songRepository struct {
	db *gorm.DB
}

// NewSongRepository creates a new SongRepository backed by the given GORM database.
func NewSongRepository(db *gorm.DB) domain.SongRepository {
	return &songRepository{db: db}
}

// GetByID retrieves a song with its album and artists.
func (r *songRepository) GetByID(ctx context.Context, id uint) (*domain.Song, error) {
	var song domain.Song
	if err := r.db.WithContext(ctx).
		Preload("Album").
		Preload("Artists").
		First(&song, id).Error; err != nil {
		return nil, mapError(err)
	}
	return &song, nil
}

// List returns one page of songs matching the query.
func (r *songRepository) List(ctx context.Context, q domain.SongQuery, pageSize int) (*domain.Page[domain.Song], error) {
	base := r.db.WithContext(ctx).Model(&domain.Song{}).
		Scopes(searchScope(q.Search))

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, mapError(err)
	}

	var songs []domain.Song
	if err := base.Scopes(
		pkg.Paginate(q.Page, pageSize),
		orderScope(q.Sort, q.Order),
	).Preload("Album").Preload("Artists").Find(&songs).Error; err != nil {
		return nil, mapError(err)
	}

	return pkg.NewPage(songs, total, q.Page, pageSize), nil
}

// searchScope matches songs whose own name, or any linked artist's name,
// contains the term as a literal case-insensitive substring.
func searchScope(term string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if term == "" {
			return db
		}
		pattern := "%" + pkg.EscapeLike(strings.ToLower(term)) + "%"
		return db.Where(
			"LOWER(songs.name) LIKE ? ESCAPE '\\' OR EXISTS (SELECT 1 FROM song_artists sa "+
				"JOIN artists ar ON ar.id = sa.artist_id "+
				"WHERE sa.song_id = songs.id AND LOWER(ar.name) LIKE ? ESCAPE '\\')",
			pattern, pattern,
		)
	}
}

// orderScope derives the ORDER BY clause from the typed sort field, with the
// id tie-breaker always ascending.
func orderScope(field domain.SongSortField, order domain.SortOrder) func(db *gorm.DB) *gorm.DB {
	dir := "ASC"
	if order == domain.SortDescending {
		dir = "DESC"
	}

	var key string
	switch field {
	case domain.SongSortReleaseDate:
		key = "songs.release_date"
	case domain.SongSortPopularity:
		key = "songs.popularity"
	default:
		key = "songs.name"
	}

	return func(db *gorm.DB) *gorm.DB {
		return db.Order(key + " " + dir).Order("songs.id ASC")
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
