package chart

import (
	"bytes"
	"context"
	"testing"

	"github.com/xuri/excelize/v2"
	"github.com/yourusername/fashion-recommender-bot/internal/domain/entity"
)

func checkWorkbook(t *testing.T, data []byte, name, wantName string) {
	t.Helper()
	if name != wantName {
		t.Errorf("file name: got %q, want %q", name, wantName)
	}
	if len(data) == 0 {
		t.Fatal("empty workbook bytes")
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("rendered bytes are not a valid workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Data")
	if err != nil {
		t.Fatalf("read Data sheet: %v", err)
	}
	if len(rows) < 2 {
		t.Fatalf("got %d rows in Data sheet, want header plus data", len(rows))
	}
}

func TestRenderBar(t *testing.T) {
	renderer := NewExcelChartRenderer()
	data := []entity.BrandRating{
		{Brand: "BrandX", MeanRating: 4.5},
		{Brand: "BrandY", MeanRating: 4.2},
	}

	raw, name, err := renderer.RenderBar(context.Background(), data)
	if err != nil {
		t.Fatalf("render bar: %v", err)
	}
	checkWorkbook(t, raw, name, "brand_ratings.xlsx")
}

func TestRenderPie(t *testing.T) {
	renderer := NewExcelChartRenderer()
	data := []entity.CategoryShare{
		{Category: "Shoes", Count: 3, Percent: 75},
		{Category: "Jacket", Count: 1, Percent: 25},
	}

	raw, name, err := renderer.RenderPie(context.Background(), data)
	if err != nil {
		t.Fatalf("render pie: %v", err)
	}
	checkWorkbook(t, raw, name, "category_share.xlsx")
}

func TestRenderLine(t *testing.T) {
	renderer := NewExcelChartRenderer()
	data := []entity.PricePoint{
		{Price: 500, Rating: 4.5},
		{Price: 1000, Rating: 4.8},
	}

	raw, name, err := renderer.RenderLine(context.Background(), data)
	if err != nil {
		t.Fatalf("render line: %v", err)
	}
	checkWorkbook(t, raw, name, "price_rating_trend.xlsx")
}

func TestRenderBarNoData(t *testing.T) {
	renderer := NewExcelChartRenderer()
	if _, _, err := renderer.RenderBar(context.Background(), nil); err == nil {
		t.Fatal("expected error for empty chart data")
	}
}
