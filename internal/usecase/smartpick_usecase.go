package usecase

import (
	"errors"

	"github.com/yourusername/fashion-recommender-bot/internal/domain/entity"
)

// ErrNoEligibleProduct bo'sh natijadan smart pick tanlab bo'lmaydi
var ErrNoEligibleProduct = errors.New("no eligible product")

// Summary filtrlangan natija bo'yicha qisqa statistika
type Summary struct {
	TopBrand     string
	HighestRated entity.Product
	MeanPrice    int
}

// SmartScore mahsulotning evristik bahosi: reyting va narx kombinatsiyasi,
// tanlangan kategoriyaga mos kelsa +2 bonus. Pure funksiya.
func SmartScore(p entity.Product, selectedCategory string) float64 {
	score := p.Rating*2.5 - p.Price/500
	if selectedCategory != entity.CategoryAll && p.Category == selectedCategory {
		score += 2
	}
	return score
}

// BestOf eng yuqori SmartScore li mahsulotni tanlash.
// Teng ballarda birinchi uchragani g'olib (katalog tartibi bo'yicha).
func BestOf(set []entity.Product, selectedCategory string) (entity.Product, float64, error) {
	if len(set) == 0 {
		return entity.Product{}, 0, ErrNoEligibleProduct
	}

	best := set[0]
	bestScore := SmartScore(best, selectedCategory)
	for _, p := range set[1:] {
		if s := SmartScore(p, selectedCategory); s > bestScore {
			best = p
			bestScore = s
		}
	}
	return best, bestScore, nil
}

// Summarize natija bo'yicha statistika: eng ko'p uchragan brend,
// eng yuqori reytingli mahsulot va o'rtacha narx (butun qismigacha
// kesiladi, yaxlitlanmaydi). Tengliklarda birinchi uchragani qoladi.
func Summarize(set []entity.Product) (Summary, error) {
	if len(set) == 0 {
		return Summary{}, ErrNoEligibleProduct
	}

	brandCounts := make(map[string]int, len(set))
	var brandOrder []string
	highest := set[0]
	var total float64

	for _, p := range set {
		if _, seen := brandCounts[p.Brand]; !seen {
			brandOrder = append(brandOrder, p.Brand)
		}
		brandCounts[p.Brand]++
		if p.Rating > highest.Rating {
			highest = p
		}
		total += p.Price
	}

	// Teng chastotada birinchi uchragan brend g'olib
	topBrand := brandOrder[0]
	for _, b := range brandOrder[1:] {
		if brandCounts[b] > brandCounts[topBrand] {
			topBrand = b
		}
	}

	return Summary{
		TopBrand:     topBrand,
		HighestRated: highest,
		MeanPrice:    int(total / float64(len(set))),
	}, nil
}
