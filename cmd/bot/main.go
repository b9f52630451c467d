package main

import (
	"context"
	"io"
	"log"
	"os/signal"
	"syscall"

	"github.com/yourusername/fashion-recommender-bot/config"
	"github.com/yourusername/fashion-recommender-bot/internal/delivery/telegram"
	"github.com/yourusername/fashion-recommender-bot/internal/domain/repository"
	"github.com/yourusername/fashion-recommender-bot/internal/infrastructure/chart"
	"github.com/yourusername/fashion-recommender-bot/internal/infrastructure/gemini"
	"github.com/yourusername/fashion-recommender-bot/internal/infrastructure/parser"
	"github.com/yourusername/fashion-recommender-bot/internal/infrastructure/storage"
	"github.com/yourusername/fashion-recommender-bot/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Konfiguratsiya yuklanmadi: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Storage
	catalogRepo := storage.NewMemoryCatalogRepository()

	snapshot, err := storage.NewCSVSnapshotWriter(cfg.FilteredPath)
	if err != nil {
		log.Fatalf("❌ Snapshot writer yaratilmadi: %v", err)
	}

	var historyRepo repository.HistoryRepository
	switch cfg.HistoryBackend {
	case config.HistoryBackendSQLite:
		historyRepo, err = storage.NewSQLiteHistoryRepository(cfg.HistoryDBPath)
	default:
		historyRepo, err = storage.NewCSVHistoryRepository(cfg.HistoryPath)
	}
	if err != nil {
		log.Fatalf("❌ Tarix ombori yaratilmadi: %v", err)
	}
	if closer, ok := historyRepo.(io.Closer); ok {
		defer closer.Close()
	}

	// Usecases
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo, parser.NewCSVParser(), parser.NewExcelParser())
	filterUseCase := usecase.NewFilterUseCase(catalogRepo, snapshot)
	historyUseCase := usecase.NewHistoryUseCase(historyRepo, snapshot)
	chartUseCase := usecase.NewChartUseCase(chart.NewExcelChartRenderer())

	// Katalogsiz ishlash mumkin emas
	count, err := catalogUseCase.LoadFromFile(ctx, cfg.CatalogPath)
	if err != nil {
		log.Fatalf("❌ Katalog yuklanmadi (%s): %v", cfg.CatalogPath, err)
	}
	log.Printf("📦 Katalog tayyor: %d ta mahsulot (%s)", count, cfg.CatalogPath)

	// Gemini ixtiyoriy: kalit bo'lmasa stilist izohisiz ishlaymiz
	var aiRepo repository.AIRepository
	if cfg.GeminiAPIKey != "" {
		aiRepo, err = gemini.NewGeminiClient(cfg.GeminiAPIKey)
		if err != nil {
			log.Printf("⚠️ Gemini client yaratilmadi, stilist izohisiz davom etamiz: %v", err)
		} else {
			defer aiRepo.Close()
			log.Println("🧠 Gemini stilist yoqildi")
		}
	}

	handler, err := telegram.NewBotHandler(cfg.TelegramToken, catalogUseCase, filterUseCase, historyUseCase, chartUseCase, aiRepo)
	if err != nil {
		log.Fatalf("❌ Bot yaratilmadi: %v", err)
	}

	if err := handler.Start(ctx); err != nil && err != context.Canceled {
		log.Fatalf("❌ Bot xatolik bilan to'xtadi: %v", err)
	}
	log.Println("👋 Bot to'xtatildi")
}
