package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yourusername/fashion-recommender-bot/internal/domain/entity"
	"github.com/yourusername/fashion-recommender-bot/internal/domain/repository"
)

func testEntries() []entity.HistoryEntry {
	return []entity.HistoryEntry{
		{
			Product: entity.Product{Name: "Sneaker One", Brand: "BrandX", Category: "Shoes", Price: 500, Rating: 4.5},
			SavedAt: "2026-08-01 10:00:00",
		},
		{
			Product: entity.Product{Name: "Denim Jacket", Brand: "BrandZ", Category: "Jacket", Price: 1200.5, Rating: 4.1},
			SavedAt: "2026-08-01 10:05:00",
		},
	}
}

func TestCSVHistoryLoadNotFound(t *testing.T) {
	repo, err := NewCSVHistoryRepository(filepath.Join(t.TempDir(), "history.csv"))
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}

	if _, err := repo.Load(context.Background()); !errors.Is(err, repository.ErrHistoryNotFound) {
		t.Fatalf("got %v, want ErrHistoryNotFound", err)
	}
}

func TestCSVHistoryRoundTrip(t *testing.T) {
	repo, err := NewCSVHistoryRepository(filepath.Join(t.TempDir(), "history.csv"))
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}

	want := testEntries()
	if err := repo.Replace(context.Background(), want); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestCSVHistoryReplaceOverwrites(t *testing.T) {
	repo, err := NewCSVHistoryRepository(filepath.Join(t.TempDir(), "history.csv"))
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}

	if err := repo.Replace(context.Background(), testEntries()); err != nil {
		t.Fatalf("first replace: %v", err)
	}
	if err := repo.Replace(context.Background(), testEntries()[:1]); err != nil {
		t.Fatalf("second replace: %v", err)
	}

	got, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d entries after overwrite, want 1", len(got))
	}
}

func TestCSVHistoryEmptyStoreIsNotMissing(t *testing.T) {
	repo, err := NewCSVHistoryRepository(filepath.Join(t.TempDir(), "history.csv"))
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}

	if err := repo.Replace(context.Background(), nil); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("empty store must load without error, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d entries, want 0", len(got))
	}
}

func TestCSVHistoryLegacyRowsWithoutSavedAt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")

	// Saved_At ustuni paydo bo'lishidan oldingi formatdagi fayl
	legacy := "Product_Name,Brand,Category,Price,Rating\nOld Tee,BrandX,Shirt,300,3.8\n"
	if err := os.WriteFile(path, []byte(legacy), 0o644); err != nil {
		t.Fatalf("write legacy file: %v", err)
	}

	repo, err := NewCSVHistoryRepository(path)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}

	got, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d entries, want 1", len(got))
	}
	if got[0].SavedAt != entity.SavedAtMissing {
		t.Fatalf("legacy SavedAt: got %q, want %q", got[0].SavedAt, entity.SavedAtMissing)
	}
}

func TestCSVHistoryCorruptFileReported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")

	corrupt := "Product_Name,Brand,Category,Price,Rating,Saved_At\nTee,BrandX,Shirt,not-a-number,3.8,N/A\n"
	if err := os.WriteFile(path, []byte(corrupt), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	repo, err := NewCSVHistoryRepository(path)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}

	if _, err := repo.Load(context.Background()); err == nil {
		t.Fatal("expected error for corrupt history file")
	}
}
