package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/yourusername/fashion-recommender-bot/internal/domain/entity"
	"github.com/yourusername/fashion-recommender-bot/internal/domain/repository"
)

type memoryCatalogRepository struct {
	mu      sync.RWMutex
	catalog *entity.ProductCatalog
}

// NewMemoryCatalogRepository in-memory katalog repository yaratish.
// Mahsulotlar slice da saqlanadi: fayldagi tartib filtr natijalari
// tartibini belgilaydi.
func NewMemoryCatalogRepository() repository.CatalogRepository {
	return &memoryCatalogRepository{}
}

// UpdateCatalog butun katalogni almashtirish
func (m *memoryCatalogRepository) UpdateCatalog(ctx context.Context, catalog entity.ProductCatalog) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.catalog = &catalog
	return nil
}

// GetAll barcha mahsulotlarni asl tartibda olish
func (m *memoryCatalogRepository) GetAll(ctx context.Context) ([]entity.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.catalog == nil {
		return nil, fmt.Errorf("catalog not loaded")
	}

	products := make([]entity.Product, len(m.catalog.Products))
	copy(products, m.catalog.Products)
	return products, nil
}

// GetCatalog katalog metama'lumotini olish
func (m *memoryCatalogRepository) GetCatalog(ctx context.Context) (*entity.ProductCatalog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.catalog == nil {
		return nil, fmt.Errorf("catalog not loaded")
	}
	return m.catalog, nil
}

// Categories katalogdagi kategoriyalarni alifbo tartibida olish
func (m *memoryCatalogRepository) Categories(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.catalog == nil {
		return nil, fmt.Errorf("catalog not loaded")
	}

	seen := make(map[string]struct{})
	var categories []string
	for _, p := range m.catalog.Products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	sort.Strings(categories)
	return categories, nil
}
