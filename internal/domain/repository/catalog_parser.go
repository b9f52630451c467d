package repository

import (
	"context"

	"github.com/yourusername/fashion-recommender-bot/internal/domain/entity"
)

// CatalogParser katalog fayllarini parse qilish uchun interface
type CatalogParser interface {
	// ParseProducts fayldan mahsulotlarni o'qish
	ParseProducts(ctx context.Context, filePath string) ([]entity.Product, error)

	// ParseProductsFromBytes byte array dan parse qilish
	ParseProductsFromBytes(ctx context.Context, data []byte, filename string) ([]entity.Product, error)
}
