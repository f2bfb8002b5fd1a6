package artist

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/simp-lee/catalog/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Artist{}, &domain.Album{}, &domain.Song{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedArtists(t *testing.T, db *gorm.DB, names ...string) {
	t.Helper()
	for _, name := range names {
		a := domain.Artist{Name: name}
		if err := db.Create(&a).Error; err != nil {
			t.Fatalf("seed artist %s: %v", name, err)
		}
	}
}

func artistNames(page *domain.Page[domain.Artist]) []string {
	names := make([]string, 0, len(page.Items))
	for _, a := range page.Items {
		names = append(names, a.Name)
	}
	return names
}

func TestList_SortedByName(t *testing.T) {
	db := setupTestDB(t)
	seedArtists(t, db, "Queen", "Aerosmith", "Daft Punk")
	repo := NewArtistRepository(db)
	ctx := context.Background()

	asc, err := repo.List(ctx, domain.ArtistQuery{Sort: domain.ArtistSortName, Order: domain.SortAscending, Page: 1}, 25)
	if err != nil {
		t.Fatalf("List asc: %v", err)
	}
	want := []string{"Aerosmith", "Daft Punk", "Queen"}
	got := artistNames(asc)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("asc names = %v, want %v", got, want)
		}
	}

	desc, err := repo.List(ctx, domain.ArtistQuery{Sort: domain.ArtistSortName, Order: domain.SortDescending, Page: 1}, 25)
	if err != nil {
		t.Fatalf("List desc: %v", err)
	}
	if names := artistNames(desc); names[0] != "Queen" || names[2] != "Aerosmith" {
		t.Errorf("desc names = %v, want reverse order", names)
	}
}

func TestList_Search(t *testing.T) {
	db := setupTestDB(t)
	seedArtists(t, db, "Daft Punk", "The Sex Pistols", "Queen")
	repo := NewArtistRepository(db)

	page, err := repo.List(context.Background(), domain.ArtistQuery{
		Search: "PUNK", Sort: domain.ArtistSortName, Order: domain.SortAscending, Page: 1,
	}, 25)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.Total != 1 || page.Items[0].Name != "Daft Punk" {
		t.Errorf("got %v (total %d), want only Daft Punk", artistNames(page), page.Total)
	}
}

func TestList_SearchMetacharactersAreLiteral(t *testing.T) {
	db := setupTestDB(t)
	seedArtists(t, db, "Blink_182", "Blink0182")
	repo := NewArtistRepository(db)

	page, err := repo.List(context.Background(), domain.ArtistQuery{
		Search: "_18", Sort: domain.ArtistSortName, Order: domain.SortAscending, Page: 1,
	}, 25)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.Total != 1 || page.Items[0].Name != "Blink_182" {
		t.Errorf("got %v (total %d), want only Blink_182", artistNames(page), page.Total)
	}
}

func TestList_EmptyCatalog(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArtistRepository(db)

	page, err := repo.List(context.Background(), domain.ArtistQuery{
		Sort: domain.ArtistSortName, Order: domain.SortAscending, Page: 1,
	}, 25)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.Total != 0 || page.TotalPages != 0 || len(page.Items) != 0 {
		t.Errorf("got Total=%d TotalPages=%d len=%d, want all zero", page.Total, page.TotalPages, len(page.Items))
	}
	if page.HasPrevious || page.HasNext {
		t.Errorf("empty catalog must have no neighbors: %+v", page.Meta())
	}
}

func TestList_Pagination(t *testing.T) {
	db := setupTestDB(t)
	seedArtists(t, db, "Alpha", "Bravo", "Charlie", "Delta", "Echo")
	repo := NewArtistRepository(db)

	page, err := repo.List(context.Background(), domain.ArtistQuery{
		Sort: domain.ArtistSortName, Order: domain.SortAscending, Page: 2,
	}, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if names := artistNames(page); len(names) != 2 || names[0] != "Charlie" || names[1] != "Delta" {
		t.Errorf("page 2 names = %v, want [Charlie Delta]", names)
	}
	if !page.HasPrevious || !page.HasNext || page.TotalPages != 3 {
		t.Errorf("HasPrevious=%v HasNext=%v TotalPages=%d, want true/true/3",
			page.HasPrevious, page.HasNext, page.TotalPages)
	}
}

func TestGetByID_PreloadsAlbums(t *testing.T) {
	db := setupTestDB(t)
	artist := domain.Artist{Name: "Daft Punk"}
	if err := db.Create(&artist).Error; err != nil {
		t.Fatalf("seed artist: %v", err)
	}
	album := domain.Album{Name: "Discovery", Artists: []domain.Artist{artist}}
	if err := db.Create(&album).Error; err != nil {
		t.Fatalf("seed album: %v", err)
	}
	repo := NewArtistRepository(db)

	got, err := repo.GetByID(context.Background(), artist.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(got.Albums) != 1 || got.Albums[0].Name != "Discovery" {
		t.Errorf("Albums = %+v, want [Discovery]", got.Albums)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArtistRepository(db)

	_, err := repo.GetByID(context.Background(), 42)
	if !domain.IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}
