package repository

import (
	"context"

	"github.com/yourusername/fashion-recommender-bot/internal/domain/entity"
)

// SnapshotWriter har filtrlashda natijani side-faylga yozish uchun interface.
// Fayl har safar to'liq qayta yoziladi; savedAt bo'sh bo'lsa hali
// saqlanmagan natija degani.
type SnapshotWriter interface {
	// WriteSnapshot filtrlangan natijani yozish
	WriteSnapshot(ctx context.Context, products []entity.Product, savedAt string) error
}
