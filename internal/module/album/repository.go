package album

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/simp-lee/catalog/internal/domain"
	"github.com/simp-lee/catalog/internal/pkg"
)

// firstArtistName resolves, per album row, the name of the first associated
// artist (lowest artist id). Used as the sort key for artist_name ordering.
const firstArtistName = "(SELECT ar.name FROM album_artists aa " +
	"JOIN artists ar ON ar.id = aa.artist_id " +
	"WHERE aa.album_id = albums.id ORDER BY ar.id LIMIT 1)"

// albumRepository implements domain.AlbumRepository using GORM.
type albumRepository struct {
	db *gorm.DB
}

// NewAlbumRepository creates a new AlbumRepository backed by the given GORM database.
func NewAlbumRepository(db *gorm.DB) domain.AlbumRepository {
	return &albumRepository{db: db}
}

// GetByID retrieves an album with its artists and songs.
func (r *albumRepository) GetByID(ctx context.Context, id uint) (*domain.Album, error) {
	var album domain.Album
	if err := r.db.WithContext(ctx).
		Preload("Artists").
		Preload("Songs").
		First(&album, id).Error; err != nil {
		return nil, mapError(err)
	}
	return &album, nil
}

// List returns one page of albums matching the query, ordered by its sort
// field with the album id as tie-breaker. One COUNT plus one windowed SELECT
// per call.
func (r *albumRepository) List(ctx context.Context, q domain.AlbumQuery, pageSize int) (*domain.Page[domain.Album], error) {
	base := r.db.WithContext(ctx).Model(&domain.Album{}).
		Scopes(searchScope(q.Search))

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, mapError(err)
	}

	var albums []domain.Album
	if err := base.Scopes(
		pkg.Paginate(q.Page, pageSize),
		orderScope(q.Sort, q.Order),
	).Preload("Artists").Find(&albums).Error; err != nil {
		return nil, mapError(err)
	}

	return pkg.NewPage(albums, total, q.Page, pageSize), nil
}

// searchScope matches albums whose own name, or any linked artist's name,
// contains the term as a case-insensitive substring. An empty term matches
// everything. The term is matched literally: LIKE metacharacters in it are
// escaped. The artist condition uses EXISTS so that albums with several
// matching artists are counted once.
func searchScope(term string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if term == "" {
			return db
		}
		pattern := "%" + pkg.EscapeLike(strings.ToLower(term)) + "%"
		return db.Where(
			"LOWER(albums.name) LIKE ? ESCAPE '\\' OR EXISTS (SELECT 1 FROM album_artists aa "+
				"JOIN artists ar ON ar.id = aa.artist_id "+
				"WHERE aa.album_id = albums.id AND LOWER(ar.name) LIKE ? ESCAPE '\\')",
			pattern, pattern,
		)
	}
}

// orderScope derives the ORDER BY clause from the typed sort field. The id
// tie-breaker is always ascending so that rows with equal sort keys keep the
// same relative order in both directions.
func orderScope(field domain.AlbumSortField, order domain.SortOrder) func(db *gorm.DB) *gorm.DB {
	dir := "ASC"
	if order == domain.SortDescending {
		dir = "DESC"
	}

	var key string
	switch field {
	case domain.AlbumSortReleaseDate:
		key = "albums.release_date"
	case domain.AlbumSortArtistName:
		key = firstArtistName
	default:
		key = "albums.name"
	}

	return func(db *gorm.DB) *gorm.DB {
		return db.Order(key + " " + dir).Order("albums.id ASC")
	}
}

// mapError converts GORM errors to domain errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return domain.NewAppError(domain.CodeInternal, "database error", err)
}
