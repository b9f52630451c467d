package entity

// ChartKind diagramma turi
type ChartKind string

const (
	ChartBar  ChartKind = "Bar"
	ChartPie  ChartKind = "Pie"
	ChartLine ChartKind = "Line"
)

// BrandRating bar diagramma uchun brend bo'yicha o'rtacha reyting
type BrandRating struct {
	Brand      string
	MeanRating float64
}

// CategoryShare pie diagramma uchun kategoriya ulushi
type CategoryShare struct {
	Category string
	Count    int
	Percent  float64
}

// PricePoint line diagramma uchun narx-reyting nuqtasi
type PricePoint struct {
	Price  float64
	Rating float64
}
