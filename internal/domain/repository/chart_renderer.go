package repository

import (
	"context"

	"github.com/yourusername/fashion-recommender-bot/internal/domain/entity"
)

// ChartRenderer agregatlardan vizual artefakt yaratish uchun interface.
// Renderer chaqiruvlar orasida holat saqlamaydi.
type ChartRenderer interface {
	// RenderBar brend bo'yicha o'rtacha reyting diagrammasi
	RenderBar(ctx context.Context, data []entity.BrandRating) ([]byte, string, error)

	// RenderPie kategoriya ulushlari diagrammasi
	RenderPie(ctx context.Context, data []entity.CategoryShare) ([]byte, string, error)

	// RenderLine narx-reyting trend diagrammasi
	RenderLine(ctx context.Context, data []entity.PricePoint) ([]byte, string, error)
}
