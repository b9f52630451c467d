package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/yourusername/fashion-recommender-bot/internal/domain/entity"
	"github.com/yourusername/fashion-recommender-bot/internal/domain/repository"
)

// ErrEmptyFilteredSet bo'sh natijani tarixga saqlab bolmaydi
var ErrEmptyFilteredSet = errors.New("filtered set is empty")

// ErrHistoryEmpty tarix ombori mavjud lekin yozuvlar yo'q
var ErrHistoryEmpty = errors.New("history is empty")

// HistoryUseCase tarix bilan ishlash business logic
type HistoryUseCase interface {
	// Save filtrlangan natijani bitta umumiy vaqt bilan tarixga qo'shish.
	// Oldingi tarix bilan birlashtiriladi, to'liq dublikatlar olib
	// tashlanadi va ombor qayta yoziladi. Saqlangan vaqtni qaytaradi.
	Save(ctx context.Context, set []entity.Product) (string, error)

	// View butun tarixni saqlangan tartibda olish.
	// Ombor yo'q bo'lsa repository.ErrHistoryNotFound,
	// bo'sh bo'lsa ErrHistoryEmpty qaytaradi.
	View(ctx context.Context) ([]entity.HistoryEntry, error)
}

type historyUseCase struct {
	historyRepo repository.HistoryRepository
	snapshot    repository.SnapshotWriter
	now         func() time.Time
}

// NewHistoryUseCase yangi HistoryUseCase yaratish
func NewHistoryUseCase(historyRepo repository.HistoryRepository, snapshot repository.SnapshotWriter) HistoryUseCase {
	return &historyUseCase{
		historyRepo: historyRepo,
		snapshot:    snapshot,
		now:         time.Now,
	}
}

// Save filtrlangan natijani tarixga qo'shish
func (u *historyUseCase) Save(ctx context.Context, set []entity.Product) (string, error) {
	if len(set) == 0 {
		return "", ErrEmptyFilteredSet
	}

	// Bitta saqlash amalidagi barcha yozuvlar bir xil vaqt oladi
	stamp := u.now()
	stamped := make([]entity.HistoryEntry, 0, len(set))
	for _, p := range set {
		stamped = append(stamped, entity.NewHistoryEntry(p, stamp))
	}

	prior, err := u.historyRepo.Load(ctx)
	if err != nil && !errors.Is(err, repository.ErrHistoryNotFound) {
		return "", fmt.Errorf("failed to load history: %w", err)
	}

	combined := entity.DedupHistory(append(prior, stamped...))
	if err := u.historyRepo.Replace(ctx, combined); err != nil {
		return "", fmt.Errorf("failed to write history: %w", err)
	}

	savedAt := stamp.Format(entity.SavedAtLayout)

	// Snapshot endi saqlangan vaqt bilan yangilanadi
	if u.snapshot != nil {
		if err := u.snapshot.WriteSnapshot(ctx, set, savedAt); err != nil {
			log.Printf("⚠️ Snapshot yozilmadi: %v", err)
		}
	}

	return savedAt, nil
}

// View butun tarixni olish
func (u *historyUseCase) View(ctx context.Context) ([]entity.HistoryEntry, error) {
	entries, err := u.historyRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrHistoryEmpty
	}
	return entries, nil
}
