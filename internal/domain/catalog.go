package domain

import (
	"context"
	"time"
)

// AlbumType classifies an album release.
type AlbumType string

const (
	AlbumTypeSingle      AlbumType = "single"
	AlbumTypeAlbum       AlbumType = "album"
	AlbumTypeCompilation AlbumType = "compilation"
)

// Artist represents a music artist in the catalog.
// Records are created and updated by the external ingestion collaborator;
// this service only reads them.
type Artist struct {
	BaseModel
	Name   string  `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Albums []Album `gorm:"many2many:album_artists" json:"-"`
	Songs  []Song  `gorm:"many2many:song_artists" json:"-"`
}

// Album represents an album release. Albums are unique per (name, release
// date) pair and relate to their artists many-to-many.
type Album struct {
	BaseModel
	Name        string     `gorm:"size:255;not null;index:idx_albums_name_release,unique" json:"name"`
	ReleaseDate *time.Time `gorm:"type:date;index:idx_albums_name_release,unique" json:"release_date"`
	AlbumType   AlbumType  `gorm:"size:32;not null;default:album" json:"album_type"`
	Artists     []Artist   `gorm:"many2many:album_artists" json:"artists,omitempty"`
	Songs       []Song     `gorm:"foreignKey:AlbumID" json:"-"`
}

// Song represents a track belonging to an album.
type Song struct {
	BaseModel
	Name        string     `gorm:"size:255;not null" json:"name"`
	ReleaseDate *time.Time `gorm:"type:date" json:"release_date"`
	Popularity  int        `gorm:"not null;default:0;check:popularity >= 0 AND popularity <= 100" json:"popularity"`
	AlbumID     uint       `gorm:"not null;index" json:"album_id"`
	Album       Album      `json:"-"`
	Artists     []Artist   `gorm:"many2many:song_artists" json:"artists,omitempty"`
}

// AlbumRepository defines the read-only data access interface for albums.
type AlbumRepository interface {
	GetByID(ctx context.Context, id uint) (*Album, error)
	List(ctx context.Context, q AlbumQuery, pageSize int) (*Page[Album], error)
}

// ArtistRepository defines the read-only data access interface for artists.
type ArtistRepository interface {
	GetByID(ctx context.Context, id uint) (*Artist, error)
	List(ctx context.Context, q ArtistQuery, pageSize int) (*Page[Artist], error)
}

// SongRepository defines the read-only data access interface for songs.
type SongRepository interface {
	GetByID(ctx context.Context, id uint) (*Song, error)
	List(ctx context.Context, q SongQuery, pageSize int) (*Page[Song], error)
}

// AlbumService defines the listing and lookup operations for albums.
type AlbumService interface {
	GetAlbum(ctx context.Context, id uint) (*Album, error)
	ListAlbums(ctx context.Context, q AlbumQuery) (*Page[Album], error)
}

// ArtistService defines the listing and lookup operations for artists.
type ArtistService interface {
	GetArtist(ctx context.Context, id uint) (*Artist, error)
	ListArtists(ctx context.Context, q ArtistQuery) (*Page[Artist], error)
}

// SongService defines the listing and lookup operations for songs.
type SongService interface {
	GetSong(ctx context.Context, id uint) (*Song, error)
	ListSongs(ctx context.Context, q SongQuery) (*Page[Song], error)
}
