package domain

// SortOrder is the direction of a listing sort.
type SortOrder int

const (
	SortAscending SortOrder = iota
	SortDescending
)

// ParseSortOrder maps a raw query value to a SortOrder. Only "desc" selects
// descending; everything else, including the empty string, is ascending.
// Query string input is untrusted and routine, so unknown values are never
// an error.
func ParseSortOrder(s string) SortOrder {
	if s == "desc" {
		return SortDescending
	}
	return SortAscending
}

func (o SortOrder) String() string {
	if o == SortDescending {
		return "desc"
	}
	return "asc"
}

// AlbumSortField is the closed set of fields an album listing can sort on.
type AlbumSortField int

const (
	AlbumSortName AlbumSortField = iota
	AlbumSortReleaseDate
	AlbumSortArtistName
)

// ParseAlbumSortField maps a raw query value to an AlbumSortField, falling
// back to the name field for anything outside the allowed set. Malformed
// links must stay harmless.
func ParseAlbumSortField(s string) AlbumSortField {
	switch s {
	case "release_date":
		return AlbumSortReleaseDate
	case "artist_name":
		return AlbumSortArtistName
	default:
		return AlbumSortName
	}
}

func (f AlbumSortField) String() string {
	switch f {
	case AlbumSortReleaseDate:
		return "release_date"
	case AlbumSortArtistName:
		return "artist_name"
	default:
		return "name"
	}
}

// ArtistSortField is the closed set of fields an artist listing can sort on.
type ArtistSortField int

const (
	ArtistSortName ArtistSortField = iota
)

// ParseArtistSortField maps a raw query value to an ArtistSortField.
// Artists only sort by name, so every input resolves to it.
func ParseArtistSortField(s string) ArtistSortField {
	return ArtistSortName
}

func (f ArtistSortField) String() string {
	return "name"
}

// SongSortField is the closed set of fields a song listing can sort on.
type SongSortField int

const (
	SongSortName SongSortField = iota
	SongSortReleaseDate
	SongSortPopularity
)

// ParseSongSortField maps a raw query value to a SongSortField, falling back
// to the name field for anything outside the allowed set.
func ParseSongSortField(s string) SongSortField {
	switch s {
	case "release_date":
		return SongSortReleaseDate
	case "popularity":
		return SongSortPopularity
	default:
		return SongSortName
	}
}

func (f SongSortField) String() string {
	switch f {
	case SongSortReleaseDate:
		return "release_date"
	case SongSortPopularity:
		return "popularity"
	default:
		return "name"
	}
}

// AlbumQuery is the normalized search/sort/page intent of one album listing
// request. Constructed per request and discarded after the response.
type AlbumQuery struct {
	Search string
	Sort   AlbumSortField
	Order  SortOrder
	Page   int
}

// ArtistQuery is the normalized intent of one artist listing request.
type ArtistQuery struct {
	Search string
	Sort   ArtistSortField
	Order  SortOrder
	Page   int
}

// SongQuery is the normalized intent of one song listing request.
type SongQuery struct {
	Search string
	Sort   SongSortField
	Order  SortOrder
	Page   int
}
