package usecase

import (
	"math"
	"testing"

	"github.com/yourusername/fashion-recommender-bot/internal/domain/entity"
)

func TestBrandRatingsMeanAndOrder(t *testing.T) {
	set := []entity.Product{
		{Name: "1", Brand: "Low", Rating: 3.0},
		{Name: "2", Brand: "High", Rating: 5.0},
		{Name: "3", Brand: "Low", Rating: 4.0},
		{Name: "4", Brand: "Mid", Rating: 4.2},
	}

	got := BrandRatings(set)
	if len(got) != 3 {
		t.Fatalf("got %d brands, want 3", len(got))
	}

	wantOrder := []string{"High", "Mid", "Low"}
	for i, br := range got {
		if br.Brand != wantOrder[i] {
			t.Errorf("position %d: got %q, want %q", i, br.Brand, wantOrder[i])
		}
	}
	if math.Abs(got[2].MeanRating-3.5) > 1e-9 {
		t.Errorf("Low mean: got %v, want 3.5", got[2].MeanRating)
	}
}

func TestBrandRatingsTopTenOnly(t *testing.T) {
	var set []entity.Product
	for i := 0; i < 15; i++ {
		set = append(set, entity.Product{
			Name:   string(rune('a' + i)),
			Brand:  string(rune('A' + i)),
			Rating: 1.0 + float64(i)*0.2,
		})
	}

	got := BrandRatings(set)
	if len(got) != 10 {
		t.Fatalf("got %d brands, want top 10", len(got))
	}
	// Eng yuqori o'rtacha birinchi bo'lishi kerak
	if got[0].Brand != "O" {
		t.Fatalf("top brand: got %q, want O", got[0].Brand)
	}
}

func TestCategorySharesPercentages(t *testing.T) {
	set := []entity.Product{
		{Name: "1", Category: "Shoes"},
		{Name: "2", Category: "Jeans"},
		{Name: "3", Category: "Shoes"},
		{Name: "4", Category: "Shoes"},
	}

	got := CategoryShares(set)
	if len(got) != 2 {
		t.Fatalf("got %d categories, want 2", len(got))
	}

	// Birinchi uchrash tartibi saqlanadi
	if got[0].Category != "Shoes" || got[1].Category != "Jeans" {
		t.Fatalf("unexpected order: %+v", got)
	}
	if got[0].Count != 3 || math.Abs(got[0].Percent-75) > 1e-9 {
		t.Errorf("Shoes share: %+v, want count 3 / 75%%", got[0])
	}
	if got[1].Count != 1 || math.Abs(got[1].Percent-25) > 1e-9 {
		t.Errorf("Jeans share: %+v, want count 1 / 25%%", got[1])
	}
}

func TestPriceTrendSortedAscending(t *testing.T) {
	set := []entity.Product{
		{Name: "1", Price: 900, Rating: 4.1},
		{Name: "2", Price: 200, Rating: 3.5},
		{Name: "3", Price: 500, Rating: 4.8},
	}

	got := PriceTrend(set)
	if len(got) != 3 {
		t.Fatalf("got %d points, want 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Price < got[i-1].Price {
			t.Fatalf("points not sorted by price: %+v", got)
		}
	}
	if got[0].Rating != 3.5 {
		t.Fatalf("cheapest point should carry its own rating, got %v", got[0].Rating)
	}
}
