package parser

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCSVParserValidCatalog(t *testing.T) {
	content := `Product_Name,Brand,Category,Price,Rating
Sneaker One,BrandX,Shoes,500,4.5
Denim Jacket,BrandZ,Jacket,1200.50,4.1
`
	path := filepath.Join(t.TempDir(), "catalog.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	products, err := NewCSVParser().ParseProducts(context.Background(), path)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("got %d products, want 2", len(products))
	}

	first := products[0]
	if first.Name != "Sneaker One" || first.Brand != "BrandX" || first.Category != "Shoes" {
		t.Errorf("unexpected first product: %+v", first)
	}
	if first.Price != 500 || first.Rating != 4.5 {
		t.Errorf("unexpected first product numbers: %+v", first)
	}
	if products[1].Price != 1200.50 {
		t.Errorf("price with decimals: got %v", products[1].Price)
	}
}

func TestCSVParserHeaderCaseInsensitive(t *testing.T) {
	content := "product_name,BRAND,category,price,rating\nTee,X,Shirt,300,3.8\n"

	products, err := NewCSVParser().ParseProductsFromBytes(context.Background(), []byte(content), "catalog.csv")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("got %d products, want 1", len(products))
	}
}

func TestCSVParserSchemaMismatch(t *testing.T) {
	content := "Product_Name,Brand,Price,Rating\nTee,X,300,3.8\n"

	_, err := NewCSVParser().ParseProductsFromBytes(context.Background(), []byte(content), "catalog.csv")
	if err == nil {
		t.Fatal("expected schema mismatch error")
	}
	if !strings.Contains(err.Error(), "Category") {
		t.Fatalf("error should name the missing column, got: %v", err)
	}
}

func TestCSVParserSkipsInvalidRows(t *testing.T) {
	content := `Product_Name,Brand,Category,Price,Rating
Good,X,Shoes,500,4.5
NoPrice,X,Shoes,abc,4.5
BadRating,X,Shoes,500,9.9
NegativePrice,X,Shoes,-10,4.0
,X,Shoes,500,4.5
`
	products, err := NewCSVParser().ParseProductsFromBytes(context.Background(), []byte(content), "catalog.csv")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Good" {
		t.Fatalf("invalid rows should be skipped, got %+v", products)
	}
}

func TestCSVParserEmptyFile(t *testing.T) {
	if _, err := NewCSVParser().ParseProductsFromBytes(context.Background(), nil, "catalog.csv"); err == nil {
		t.Fatal("expected error for empty catalog")
	}
}

func TestCSVParserHeaderOnly(t *testing.T) {
	content := "Product_Name,Brand,Category,Price,Rating\n"
	if _, err := NewCSVParser().ParseProductsFromBytes(context.Background(), []byte(content), "catalog.csv"); err == nil {
		t.Fatal("expected error for catalog with no data rows")
	}
}
