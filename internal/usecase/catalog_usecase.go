package usecase

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/yourusername/fashion-recommender-bot/internal/domain/entity"
	"github.com/yourusername/fashion-recommender-bot/internal/domain/repository"
)

// CatalogUseCase katalogni yuklash va o'qish business logic
type CatalogUseCase interface {
	// LoadFromFile katalog faylini yuklash (fayl turi kengaytmadan aniqlanadi)
	LoadFromFile(ctx context.Context, path string) (int, error)

	// LoadFromBytes yuborilgan fayldan katalogni almashtirish
	LoadFromBytes(ctx context.Context, data []byte, filename string) (int, error)

	// GetAll barcha mahsulotlarni asl tartibda olish
	GetAll(ctx context.Context) ([]entity.Product, error)

	// Categories kategoriyalar ro'yxati (alifbo tartibida, "Dress" siz)
	Categories(ctx context.Context) ([]string, error)

	// Info katalog haqida qisqa ma'lumot
	Info(ctx context.Context) (string, error)
}

type catalogUseCase struct {
	catalogRepo repository.CatalogRepository
	csvParser   repository.CatalogParser
	excelParser repository.CatalogParser
}

// NewCatalogUseCase yangi CatalogUseCase yaratish
func NewCatalogUseCase(
	catalogRepo repository.CatalogRepository,
	csvParser repository.CatalogParser,
	excelParser repository.CatalogParser,
) CatalogUseCase {
	return &catalogUseCase{
		catalogRepo: catalogRepo,
		csvParser:   csvParser,
		excelParser: excelParser,
	}
}

// LoadFromFile katalog faylini yuklash
func (u *catalogUseCase) LoadFromFile(ctx context.Context, path string) (int, error) {
	parser, err := u.parserFor(path)
	if err != nil {
		return 0, err
	}

	products, err := parser.ParseProducts(ctx, path)
	if err != nil {
		return 0, err
	}

	return u.replaceCatalog(ctx, products, filepath.Base(path))
}

// LoadFromBytes yuborilgan fayldan katalogni almashtirish
func (u *catalogUseCase) LoadFromBytes(ctx context.Context, data []byte, filename string) (int, error) {
	parser, err := u.parserFor(filename)
	if err != nil {
		return 0, err
	}

	products, err := parser.ParseProductsFromBytes(ctx, data, filename)
	if err != nil {
		return 0, err
	}

	return u.replaceCatalog(ctx, products, filename)
}

// replaceCatalog taqiqlangan kategoriyani chiqarib tashlab katalogni saqlash
func (u *catalogUseCase) replaceCatalog(ctx context.Context, products []entity.Product, source string) (int, error) {
	kept := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if p.Category == entity.ExcludedCategory {
			continue
		}
		kept = append(kept, p)
	}
	if dropped := len(products) - len(kept); dropped > 0 {
		log.Printf("🚫 %d ta '%s' kategoriyali mahsulot chiqarib tashlandi", dropped, entity.ExcludedCategory)
	}
	if len(kept) == 0 {
		return 0, fmt.Errorf("catalog %s has no products outside the %q category", source, entity.ExcludedCategory)
	}

	err := u.catalogRepo.UpdateCatalog(ctx, entity.ProductCatalog{
		Products: kept,
		LoadedAt: time.Now(),
		Source:   source,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to update catalog: %w", err)
	}
	return len(kept), nil
}

// parserFor fayl kengaytmasiga qarab parser tanlash
func (u *catalogUseCase) parserFor(filename string) (repository.CatalogParser, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return u.csvParser, nil
	case ".xlsx", ".xls":
		return u.excelParser, nil
	default:
		return nil, fmt.Errorf("unsupported catalog file type: %s (.csv, .xlsx yoki .xls kerak)", filename)
	}
}

// GetAll barcha mahsulotlarni olish
func (u *catalogUseCase) GetAll(ctx context.Context) ([]entity.Product, error) {
	return u.catalogRepo.GetAll(ctx)
}

// Categories kategoriyalar ro'yxati
func (u *catalogUseCase) Categories(ctx context.Context) ([]string, error) {
	return u.catalogRepo.Categories(ctx)
}

// Info katalog haqida qisqa ma'lumot
func (u *catalogUseCase) Info(ctx context.Context) (string, error) {
	catalog, err := u.catalogRepo.GetCatalog(ctx)
	if err != nil {
		return "", err
	}
	categories, err := u.catalogRepo.Categories(ctx)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("📦 Katalog: %s\n🛍 Mahsulotlar: %d ta\n📂 Kategoriyalar: %s\n🕒 Yuklangan: %s",
		catalog.Source,
		len(catalog.Products),
		strings.Join(categories, ", "),
		catalog.LoadedAt.Format("2006-01-02 15:04:05"),
	), nil
}
