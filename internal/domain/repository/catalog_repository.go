package repository

import (
	"context"

	"github.com/yourusername/fashion-recommender-bot/internal/domain/entity"
)

// CatalogRepository katalog bilan ishlash uchun interface.
// Katalog sessiya davomida o'qish uchun, tartib fayldagi tartib bilan bir xil.
type CatalogRepository interface {
	// UpdateCatalog butun katalogni almashtirish
	UpdateCatalog(ctx context.Context, catalog entity.ProductCatalog) error

	// GetAll barcha mahsulotlarni asl tartibda olish
	GetAll(ctx context.Context) ([]entity.Product, error)

	// GetCatalog katalog metama'lumotini olish
	GetCatalog(ctx context.Context) (*entity.ProductCatalog, error)

	// Categories katalogdagi kategoriyalarni alifbo tartibida olish
	Categories(ctx context.Context) ([]string, error)
}
