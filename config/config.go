package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Tarix ombori turlari
const (
	HistoryBackendCSV    = "csv"
	HistoryBackendSQLite = "sqlite"
)

// Config ilovaning konfiguratsiyasi
type Config struct {
	TelegramToken  string
	GeminiAPIKey   string // bo'sh bo'lsa stilist izohi o'chiriladi
	CatalogPath    string
	FilteredPath   string
	HistoryPath    string
	HistoryBackend string
	HistoryDBPath  string
}

// Load konfiguratsiyani yuklash
func Load() (*Config, error) {
	// .env faylini yuklash (mavjud bo'lsa)
	_ = godotenv.Load()

	config := &Config{
		TelegramToken:  os.Getenv("TELEGRAM_BOT_TOKEN"),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		CatalogPath:    "data/fashion_products.csv",
		FilteredPath:   "data/filtered_results.csv",
		HistoryPath:    "data/user_history.csv",
		HistoryBackend: HistoryBackendCSV,
		HistoryDBPath:  "data/history.db",
	}

	if path := os.Getenv("CATALOG_PATH"); path != "" {
		config.CatalogPath = path
	}
	if path := os.Getenv("FILTERED_PATH"); path != "" {
		config.FilteredPath = path
	}
	if path := os.Getenv("HISTORY_PATH"); path != "" {
		config.HistoryPath = path
	}
	if path := os.Getenv("HISTORY_DB_PATH"); path != "" {
		config.HistoryDBPath = path
	}
	if backend := os.Getenv("HISTORY_BACKEND"); backend != "" {
		if backend != HistoryBackendCSV && backend != HistoryBackendSQLite {
			return nil, fmt.Errorf("HISTORY_BACKEND noto'g'ri: %q (csv yoki sqlite kerak)", backend)
		}
		config.HistoryBackend = backend
	}

	// Validatsiya
	if config.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable bo'sh")
	}

	return config, nil
}
