package parser

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/yourusername/fashion-recommender-bot/internal/domain/entity"
)

// Katalog faylining majburiy ustunlari
const (
	colName     = "Product_Name"
	colBrand    = "Brand"
	colCategory = "Category"
	colPrice    = "Price"
	colRating   = "Rating"
)

var requiredColumns = []string{colName, colBrand, colCategory, colPrice, colRating}

// mapColumns header qatoridan ustun indekslarini aniqlash.
// Majburiy ustun topilmasa aniq schema xatosi qaytaradi.
func mapColumns(header []string) (map[string]int, error) {
	columnMap := make(map[string]int, len(header))
	for i, col := range header {
		columnMap[strings.ToLower(strings.TrimSpace(col))] = i
	}

	indexes := make(map[string]int, len(requiredColumns))
	var missing []string
	for _, want := range requiredColumns {
		idx, ok := columnMap[strings.ToLower(want)]
		if !ok {
			missing = append(missing, want)
			continue
		}
		indexes[want] = idx
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("catalog schema mismatch: missing column(s) %s (required: %s)",
			strings.Join(missing, ", "), strings.Join(requiredColumns, ", "))
	}
	return indexes, nil
}

// buildProducts data qatorlaridan mahsulotlarni yig'ish.
// Noto'g'ri qatorlar log bilan tashlab yuboriladi, tartib saqlanadi.
func buildProducts(rows [][]string, indexes map[string]int, source string) ([]entity.Product, error) {
	var products []entity.Product

	for i, row := range rows {
		if isEmptyRow(row) {
			continue
		}

		cell := func(col string) string {
			idx := indexes[col]
			if idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		name := cell(colName)
		brand := cell(colBrand)
		category := cell(colCategory)
		if name == "" || category == "" {
			log.Printf("⚠️ %s row %d: empty name or category - skipping", source, i+2)
			continue
		}

		price, err := strconv.ParseFloat(strings.ReplaceAll(cell(colPrice), ",", ""), 64)
		if err != nil || price < 0 {
			log.Printf("⚠️ %s row %d: invalid price '%s' - skipping", source, i+2, cell(colPrice))
			continue
		}

		rating, err := strconv.ParseFloat(cell(colRating), 64)
		if err != nil || rating < 1.0 || rating > 5.0 {
			log.Printf("⚠️ %s row %d: invalid rating '%s' - skipping", source, i+2, cell(colRating))
			continue
		}

		products = append(products, entity.Product{
			Name:     name,
			Brand:    brand,
			Category: category,
			Price:    price,
			Rating:   rating,
		})
	}

	log.Printf("📦 %s: %d ta mahsulot o'qildi", source, len(products))

	if len(products) == 0 {
		return nil, fmt.Errorf("no valid products found in %s (%d rows, all invalid or empty)", source, len(rows))
	}
	return products, nil
}

// isEmptyRow qator bo'sh yoki yo'qligini tekshirish
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
