package album

// ListAlbumsRequest represents the query parameters of the album list API.
// Unlike the HTML listing pages, which silently normalize bad input, the API
// rejects out-of-range values with a 400 validation response.
type ListAlbumsRequest struct {
	Query     string `form:"query" json:"query"`
	SortBy    string `form:"sort_by" json:"sort_by" binding:"omitempty,oneof=name release_date artist_name"`
	SortOrder string `form:"sort_order" json:"sort_order" binding:"omitempty,oneof=asc desc"`
	Page      int    `form:"page" json:"page" binding:"omitempty,min=1"`
}
