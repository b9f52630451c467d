package storage

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/yourusername/fashion-recommender-bot/internal/domain/entity"
	"github.com/yourusername/fashion-recommender-bot/internal/domain/repository"
)

var historyHeader = []string{"Product_Name", "Brand", "Category", "Price", "Rating", "Saved_At"}

type csvHistoryRepository struct {
	path string
}

// NewCSVHistoryRepository CSV fayl asosidagi tarix repository yaratish
func NewCSVHistoryRepository(path string) (repository.HistoryRepository, error) {
	if path == "" {
		return nil, errors.New("history path bo'sh bo'lmasligi kerak")
	}
	return &csvHistoryRepository{path: path}, nil
}

// Load tarix faylini to'liq o'qish.
// Fayl mavjud bo'lmasa ErrHistoryNotFound qaytaradi.
func (r *csvHistoryRepository) Load(ctx context.Context) ([]entity.HistoryEntry, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, repository.ErrHistoryNotFound
		}
		return nil, fmt.Errorf("failed to open history file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // eski yozuvlarda Saved_At bo'lmasligi mumkin

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}
	if len(records) == 0 {
		return []entity.HistoryEntry{}, nil
	}

	// Header qatorini tashlab yuborish
	entries := make([]entity.HistoryEntry, 0, len(records)-1)
	for i, row := range records[1:] {
		entry, err := parseHistoryRow(row)
		if err != nil {
			return nil, fmt.Errorf("history row %d: %w", i+2, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Replace tarix faylini to'liq qayta yozish.
// Avval vaqtinchalik faylga yoziladi, keyin rename qilinadi:
// yozish xatosi oldingi faylga ta'sir qilmaydi.
func (r *csvHistoryRepository) Replace(ctx context.Context, entries []entity.HistoryEntry) error {
	dir := filepath.Dir(r.path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	tmp, err := os.CreateTemp(dir, "history-*.csv")
	if err != nil {
		return fmt.Errorf("failed to create temp history file: %w", err)
	}
	tmpName := tmp.Name()

	writer := csv.NewWriter(tmp)
	if err := writer.Write(historyHeader); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write history header: %w", err)
	}
	for _, e := range entries {
		record := []string{
			e.Name,
			e.Brand,
			e.Category,
			strconv.FormatFloat(e.Price, 'f', -1, 64),
			strconv.FormatFloat(e.Rating, 'f', -1, 64),
			e.SavedAt,
		}
		if err := writer.Write(record); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("failed to write history record: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to flush history file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp history file: %w", err)
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace history file: %w", err)
	}
	return nil
}

// parseHistoryRow bitta tarix qatorini o'qish.
// Saved_At ustuni yo'q yoki bo'sh bo'lsa "N/A" ishlatiladi.
func parseHistoryRow(row []string) (entity.HistoryEntry, error) {
	if len(row) < 5 {
		return entity.HistoryEntry{}, fmt.Errorf("expected at least 5 fields, got %d", len(row))
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(row[3]), 64)
	if err != nil {
		return entity.HistoryEntry{}, fmt.Errorf("invalid price %q: %w", row[3], err)
	}
	rating, err := strconv.ParseFloat(strings.TrimSpace(row[4]), 64)
	if err != nil {
		return entity.HistoryEntry{}, fmt.Errorf("invalid rating %q: %w", row[4], err)
	}

	savedAt := entity.SavedAtMissing
	if len(row) > 5 && strings.TrimSpace(row[5]) != "" {
		savedAt = strings.TrimSpace(row[5])
	}

	return entity.HistoryEntry{
		Product: entity.Product{
			Name:     row[0],
			Brand:    row[1],
			Category: row[2],
			Price:    price,
			Rating:   rating,
		},
		SavedAt: savedAt,
	}, nil
}
