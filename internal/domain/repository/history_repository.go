package repository

import (
	"context"
	"errors"

	"github.com/yourusername/fashion-recommender-bot/internal/domain/entity"
)

// ErrHistoryNotFound tarix ombori hali yaratilmagan
// ("mavjud lekin bo'sh" holatidan farq qiladi).
var ErrHistoryNotFound = errors.New("history store not found")

// HistoryRepository tarix ombori bilan ishlash uchun interface
type HistoryRepository interface {
	// Load butun tarixni saqlangan tartibda o'qish.
	// Ombor mavjud bo'lmasa ErrHistoryNotFound qaytaradi.
	Load(ctx context.Context) ([]entity.HistoryEntry, error)

	// Replace omborni to'liq qayta yozish. Xatolik bo'lsa
	// oldingi holat o'zgarmasligi kerak.
	Replace(ctx context.Context, entries []entity.HistoryEntry) error
}
