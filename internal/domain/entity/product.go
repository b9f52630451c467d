package entity

import "time"

// CategoryAll kategoriya filtri o'chirilganini bildiradi
const CategoryAll = "All"

// ExcludedCategory katalog yuklanishida butunlay tashlab yuboriladigan kategoriya
const ExcludedCategory = "Dress"

// Product katalogdagi bitta mahsulot. Primary key yo'q:
// ikki mahsulot barcha maydonlari teng bo'lsagina bir xil hisoblanadi.
type Product struct {
	Name     string
	Brand    string
	Category string
	Price    float64
	Rating   float64
}

// ProductCatalog to'liq mahsulotlar katalogi
type ProductCatalog struct {
	Products []Product
	LoadedAt time.Time
	Source   string // katalog fayl nomi
}
