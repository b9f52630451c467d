package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/yourusername/fashion-recommender-bot/internal/domain/entity"
	"github.com/yourusername/fashion-recommender-bot/internal/domain/repository"
)

const barChartLimit = 10

// ChartUseCase filtrlangan natijadan diagramma artefaktlari yaratish
type ChartUseCase interface {
	// Render tanlangan turdagi diagrammani workbook sifatida olish
	Render(ctx context.Context, kind entity.ChartKind, set []entity.Product) ([]byte, string, error)
}

type chartUseCase struct {
	renderer repository.ChartRenderer
}

// NewChartUseCase yangi ChartUseCase yaratish
func NewChartUseCase(renderer repository.ChartRenderer) ChartUseCase {
	return &chartUseCase{renderer: renderer}
}

// Render diagramma yaratish
func (u *chartUseCase) Render(ctx context.Context, kind entity.ChartKind, set []entity.Product) ([]byte, string, error) {
	if len(set) == 0 {
		return nil, "", ErrNoEligibleProduct
	}

	switch kind {
	case entity.ChartBar:
		return u.renderer.RenderBar(ctx, BrandRatings(set))
	case entity.ChartPie:
		return u.renderer.RenderPie(ctx, CategoryShares(set))
	case entity.ChartLine:
		return u.renderer.RenderLine(ctx, PriceTrend(set))
	default:
		return nil, "", fmt.Errorf("unknown chart kind: %s", kind)
	}
}

// BrandRatings brend bo'yicha o'rtacha reyting, kamayish tartibida, top 10.
// Teng o'rtachalarda birinchi uchragan brend oldinda (stable sort).
func BrandRatings(set []entity.Product) []entity.BrandRating {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	var order []string

	for _, p := range set {
		if _, seen := counts[p.Brand]; !seen {
			order = append(order, p.Brand)
		}
		sums[p.Brand] += p.Rating
		counts[p.Brand]++
	}

	ratings := make([]entity.BrandRating, 0, len(order))
	for _, b := range order {
		ratings = append(ratings, entity.BrandRating{
			Brand:      b,
			MeanRating: sums[b] / float64(counts[b]),
		})
	}

	sort.SliceStable(ratings, func(i, j int) bool {
		return ratings[i].MeanRating > ratings[j].MeanRating
	})

	if len(ratings) > barChartLimit {
		ratings = ratings[:barChartLimit]
	}
	return ratings
}

// CategoryShares kategoriya bo'yicha mahsulotlar soni va foiz ulushi,
// birinchi uchrash tartibida.
func CategoryShares(set []entity.Product) []entity.CategoryShare {
	counts := make(map[string]int)
	var order []string

	for _, p := range set {
		if _, seen := counts[p.Category]; !seen {
			order = append(order, p.Category)
		}
		counts[p.Category]++
	}

	total := float64(len(set))
	shares := make([]entity.CategoryShare, 0, len(order))
	for _, c := range order {
		shares = append(shares, entity.CategoryShare{
			Category: c,
			Count:    counts[c],
			Percent:  float64(counts[c]) / total * 100,
		})
	}
	return shares
}

// PriceTrend narx bo'yicha o'sish tartibidagi narx-reyting nuqtalari
func PriceTrend(set []entity.Product) []entity.PricePoint {
	sorted := make([]entity.Product, len(set))
	copy(sorted, set)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Price < sorted[j].Price
	})

	points := make([]entity.PricePoint, 0, len(sorted))
	for _, p := range sorted {
		points = append(points, entity.PricePoint{Price: p.Price, Rating: p.Rating})
	}
	return points
}
