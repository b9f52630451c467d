package repository

import (
	"context"

	"github.com/yourusername/fashion-recommender-bot/internal/domain/entity"
)

// AIRepository smart pick uchun stilist izohi yaratish interface si.
// Ixtiyoriy: mavjud bo'lmasa bot faqat evristik natijani ko'rsatadi.
type AIRepository interface {
	// ExplainPick tanlangan mahsulot haqida qisqa izoh yaratish
	ExplainPick(ctx context.Context, best entity.Product, set []entity.Product, category string) (string, error)

	// Close client ni yopish
	Close() error
}
