package usecase

import (
	"context"
	"log"

	"github.com/yourusername/fashion-recommender-bot/internal/domain/entity"
	"github.com/yourusername/fashion-recommender-bot/internal/domain/repository"
)

// FilterUseCase katalogni filtrlash business logic
type FilterUseCase interface {
	// Filter filtr shartlariga mos mahsulotlarni katalog tartibida olish.
	// Bo'sh natija ham to'g'ri natija. Har chaqiruvda snapshot fayli
	// qayta yoziladi (debug uchun, xatosi fatal emas).
	Filter(ctx context.Context, params entity.FilterParams) ([]entity.Product, error)
}

type filterUseCase struct {
	catalogRepo repository.CatalogRepository
	snapshot    repository.SnapshotWriter
}

// NewFilterUseCase yangi FilterUseCase yaratish
func NewFilterUseCase(catalogRepo repository.CatalogRepository, snapshot repository.SnapshotWriter) FilterUseCase {
	return &filterUseCase{
		catalogRepo: catalogRepo,
		snapshot:    snapshot,
	}
}

// Filter filtr shartlariga mos mahsulotlarni olish
func (u *filterUseCase) Filter(ctx context.Context, params entity.FilterParams) ([]entity.Product, error) {
	products, err := u.catalogRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if params.Matches(p) {
			filtered = append(filtered, p)
		}
	}

	if u.snapshot != nil {
		if err := u.snapshot.WriteSnapshot(ctx, filtered, ""); err != nil {
			log.Printf("⚠️ Snapshot yozilmadi: %v", err)
		}
	}

	return filtered, nil
}
