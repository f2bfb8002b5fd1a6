package domain

import "time"

// BaseModel is the common base struct for all domain models.
// It replaces gorm.Model to avoid the implicit soft delete behavior of DeletedAt.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Page is one bounded slice of a listing result plus its pagination metadata.
//
// TotalPages is 0 when nothing matched, so callers can render a "no records"
// state without special-casing division. The requested page number is kept
// as-is even when it lies beyond the last page; such pages simply carry an
// empty Items slice with HasNext=false, which keeps "last page" links
// computable even when totals change between requests.
type Page[T any] struct {
	Items       []T   `json:"items"`
	Page        int   `json:"page"`
	PageSize    int   `json:"page_size"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"total_pages"`
	HasPrevious bool  `json:"has_previous"`
	HasNext     bool  `json:"has_next"`
}

// PageMeta is the navigation-relevant subset of a Page, independent of the
// item type.
type PageMeta struct {
	Page        int
	TotalPages  int
	HasPrevious bool
	HasNext     bool
}

// Meta returns the navigation metadata of the page.
func (p *Page[T]) Meta() PageMeta {
	return PageMeta{
		Page:        p.Page,
		TotalPages:  p.TotalPages,
		HasPrevious: p.HasPrevious,
		HasNext:     p.HasNext,
	}
}
