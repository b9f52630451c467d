package usecase

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yourusername/fashion-recommender-bot/internal/domain/entity"
	"github.com/yourusername/fashion-recommender-bot/internal/infrastructure/parser"
	"github.com/yourusername/fashion-recommender-bot/internal/infrastructure/storage"
)

const catalogCSV = `Product_Name,Brand,Category,Price,Rating
Sneaker One,BrandX,Shoes,500,4.5
Summer Gown,BrandY,Dress,900,4.9
Denim Jacket,BrandZ,Jacket,1200,4.1
Silk Dress,BrandY,Dress,1500,4.7
Classic Tee,BrandX,Shirt,300,3.8
`

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func newCatalogUseCase() (CatalogUseCase, func(ctx context.Context) ([]entity.Product, error)) {
	repo := storage.NewMemoryCatalogRepository()
	uc := NewCatalogUseCase(repo, parser.NewCSVParser(), parser.NewExcelParser())
	return uc, repo.GetAll
}

func TestCatalogLoadExcludesDressCategory(t *testing.T) {
	uc, getAll := newCatalogUseCase()

	count, err := uc.LoadFromFile(context.Background(), writeCatalogFile(t, catalogCSV))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if count != 3 {
		t.Fatalf("got %d products, want 3 after Dress exclusion", count)
	}

	products, err := getAll(context.Background())
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	for _, p := range products {
		if p.Category == entity.ExcludedCategory {
			t.Fatalf("Dress product %q survived load", p.Name)
		}
	}
}

func TestCatalogCategoriesSortedWithoutDress(t *testing.T) {
	uc, _ := newCatalogUseCase()
	if _, err := uc.LoadFromFile(context.Background(), writeCatalogFile(t, catalogCSV)); err != nil {
		t.Fatalf("load: %v", err)
	}

	categories, err := uc.Categories(context.Background())
	if err != nil {
		t.Fatalf("categories: %v", err)
	}

	want := []string{"Jacket", "Shirt", "Shoes"}
	if len(categories) != len(want) {
		t.Fatalf("got %v, want %v", categories, want)
	}
	for i, c := range categories {
		if c != want[i] {
			t.Fatalf("got %v, want %v", categories, want)
		}
	}
}

func TestCatalogLoadPreservesFileOrder(t *testing.T) {
	uc, getAll := newCatalogUseCase()
	if _, err := uc.LoadFromFile(context.Background(), writeCatalogFile(t, catalogCSV)); err != nil {
		t.Fatalf("load: %v", err)
	}

	products, err := getAll(context.Background())
	if err != nil {
		t.Fatalf("get all: %v", err)
	}

	wantOrder := []string{"Sneaker One", "Denim Jacket", "Classic Tee"}
	for i, p := range products {
		if p.Name != wantOrder[i] {
			t.Fatalf("position %d: got %q, want %q", i, p.Name, wantOrder[i])
		}
	}
}

func TestCatalogLoadOnlyDressFails(t *testing.T) {
	uc, _ := newCatalogUseCase()

	content := "Product_Name,Brand,Category,Price,Rating\nGown,BrandY,Dress,900,4.9\n"
	if _, err := uc.LoadFromFile(context.Background(), writeCatalogFile(t, content)); err == nil {
		t.Fatal("expected error for catalog with only excluded products")
	}
}

func TestCatalogLoadUnsupportedExtension(t *testing.T) {
	uc, _ := newCatalogUseCase()

	_, err := uc.LoadFromBytes(context.Background(), []byte("x"), "catalog.json")
	if err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Fatalf("got %v, want unsupported file type error", err)
	}
}
