package song

// ListSongsRequest represents the query parameters of the song list API.
// The API rejects out-of-range values; the HTML pages normalize them instead.
type ListSongsRequest struct {
	Query     string `form:"query" json:"query"`
	SortBy    string `form:"sort_by" json:"sort_by" binding:"omitempty,oneof=name release_date popularity"`
	SortOrder string `form:"sort_order" json:"sort_order" binding:"omitempty,oneof=asc desc"`
	Page      int    `form:"page" json:"page" binding:"omitempty,min=1"`
}
