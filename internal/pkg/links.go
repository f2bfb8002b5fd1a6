package pkg

import (
	"net/url"
	"strconv"

	"github.com/simp-lee/catalog/internal/domain"
)

// LinkState is the search/sort context a listing page's navigation links
// must carry forward, so that following any link reproduces the same query
// with only the page number changed.
type LinkState struct {
	Search    string
	SortBy    string
	SortOrder string
}

// ListLinks holds the navigation URLs of one listing page. An empty string
// means the link is omitted: no disabled or dead links are emitted.
type ListLinks struct {
	First    string
	Previous string
	Next     string
	Last     string
}

// BuildListLinks produces the first/previous/next/last URLs for a listing
// page. First and Previous exist only when the page has a predecessor,
// Next and Last only when it has a successor.
func BuildListLinks(basePath string, state LinkState, meta domain.PageMeta) ListLinks {
	var links ListLinks

	if meta.HasPrevious {
		links.First = pageURL(basePath, state, 1)
		links.Previous = pageURL(basePath, state, meta.Page-1)
	}
	if meta.HasNext {
		links.Next = pageURL(basePath, state, meta.Page+1)
		links.Last = pageURL(basePath, state, meta.TotalPages)
	}

	return links
}

// pageURL encodes the full listing state as a query string. url.Values
// percent-encodes every value, so search terms containing "&" or "="
// round-trip unchanged through the resolver.
func pageURL(basePath string, state LinkState, page int) string {
	v := url.Values{}
	v.Set(ParamPage, strconv.Itoa(page))
	if state.Search != "" {
		v.Set(ParamQuery, state.Search)
	}
	v.Set(ParamSortBy, state.SortBy)
	v.Set(ParamSortOrder, state.SortOrder)
	return basePath + "?" + v.Encode()
}
