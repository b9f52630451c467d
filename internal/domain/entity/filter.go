package entity

// Filtr chegaralari va qadamlar (prezentatsiya slayderlar uchun)
const (
	MinBudget     = 100.0
	MaxBudget     = 3000.0
	BudgetStep    = 100.0
	MinRatingLow  = 1.0
	MinRatingHigh = 5.0
	RatingStep    = 0.1

	DefaultMaxPrice  = 1500.0
	DefaultMinRating = 4.0
)

// FilterParams foydalanuvchi tanlagan filtr parametrlari
type FilterParams struct {
	MaxPrice  float64
	MinRating float64
	Category  string
}

// DefaultFilterParams boshlang'ich filtr qiymatlari
func DefaultFilterParams() FilterParams {
	return FilterParams{
		MaxPrice:  DefaultMaxPrice,
		MinRating: DefaultMinRating,
		Category:  CategoryAll,
	}
}

// Matches mahsulot filtr shartlariga mos kelishini tekshirish
func (f FilterParams) Matches(p Product) bool {
	if p.Price > f.MaxPrice || p.Rating < f.MinRating {
		return false
	}
	return f.Category == CategoryAll || p.Category == f.Category
}
