package pkg

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/simp-lee/catalog/internal/domain"
)

// DefaultPageSize is the page size used when configuration does not set one.
const DefaultPageSize = 25

// Query parameter names shared by the listing pages and the link builder.
const (
	ParamQuery     = "query"
	ParamSortBy    = "sort_by"
	ParamSortOrder = "sort_order"
	ParamPage      = "page"
)

// ParseAlbumQuery resolves the raw request parameters of an album listing
// into a normalized query. All parameters are optional and untrusted;
// unknown or malformed values fall back to the documented defaults instead
// of erroring.
func ParseAlbumQuery(c *gin.Context) domain.AlbumQuery {
	return domain.AlbumQuery{
		Search: c.Query(ParamQuery),
		Sort:   domain.ParseAlbumSortField(c.Query(ParamSortBy)),
		Order:  domain.ParseSortOrder(c.Query(ParamSortOrder)),
		Page:   parsePage(c.Query(ParamPage)),
	}
}

// ParseArtistQuery resolves the raw request parameters of an artist listing.
func ParseArtistQuery(c *gin.Context) domain.ArtistQuery {
	return domain.ArtistQuery{
		Search: c.Query(ParamQuery),
		Sort:   domain.ParseArtistSortField(c.Query(ParamSortBy)),
		Order:  domain.ParseSortOrder(c.Query(ParamSortOrder)),
		Page:   parsePage(c.Query(ParamPage)),
	}
}

// ParseSongQuery resolves the raw request parameters of a song listing.
func ParseSongQuery(c *gin.Context) domain.SongQuery {
	return domain.SongQuery{
		Search: c.Query(ParamQuery),
		Sort:   domain.ParseSongSortField(c.Query(ParamSortBy)),
		Order:  domain.ParseSortOrder(c.Query(ParamSortOrder)),
		Page:   parsePage(c.Query(ParamPage)),
	}
}

// parsePage converts a raw page value to a positive page number.
// Non-numeric or non-positive input resolves to page 1. Values beyond the
// last valid page are allowed; the paginator resolves them to an empty page.
func parsePage(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes the LIKE metacharacters in a search term so the term
// matches as a literal substring. The containing LIKE clause must declare
// backslash as its escape character with ESCAPE '\'.
func EscapeLike(term string) string {
	return likeEscaper.Replace(term)
}

// ParseID extracts and validates the "id" URL parameter.
func ParseID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id: %s", idStr)
	}
	if id > uint64(^uint(0)) {
		return 0, fmt.Errorf("invalid id: %s", idStr)
	}
	return uint(id), nil
}

// Paginate returns a GORM scope that applies LIMIT and OFFSET for the given
// page. Pages beyond the last simply select nothing.
func Paginate(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		offset := (page - 1) * pageSize
		return db.Offset(offset).Limit(pageSize)
	}
}

// NewPage assembles a Page from one query's results.
//
// TotalPages is ceil(total/pageSize), or 0 when nothing matched. The page
// number is not clamped: a request past the last page keeps its number and
// gets an empty Items slice with HasNext=false.
func NewPage[T any](items []T, total int64, page, pageSize int) *domain.Page[T] {
	totalPages := 0
	if total > 0 && pageSize > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(pageSize)))
	}

	if items == nil {
		items = []T{}
	}

	return &domain.Page[T]{
		Items:       items,
		Page:        page,
		PageSize:    pageSize,
		Total:       total,
		TotalPages:  totalPages,
		HasPrevious: page > 1,
		HasNext:     page < totalPages,
	}
}
