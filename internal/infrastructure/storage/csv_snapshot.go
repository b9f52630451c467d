package storage

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/yourusername/fashion-recommender-bot/internal/domain/entity"
	"github.com/yourusername/fashion-recommender-bot/internal/domain/repository"
)

type csvSnapshotWriter struct {
	path string
}

// NewCSVSnapshotWriter filtrlangan natija snapshot yozuvchisi.
// Schema doimiy: Saved_At ustuni har doim bor, saqlanmagan
// natijalarda bo'sh qoladi.
func NewCSVSnapshotWriter(path string) (repository.SnapshotWriter, error) {
	if path == "" {
		return nil, errors.New("snapshot path bo'sh bo'lmasligi kerak")
	}
	return &csvSnapshotWriter{path: path}, nil
}

// WriteSnapshot faylni to'liq qayta yozish
func (w *csvSnapshotWriter) WriteSnapshot(ctx context.Context, products []entity.Product, savedAt string) error {
	dir := filepath.Dir(w.path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create snapshot directory: %w", err)
		}
	}

	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(historyHeader); err != nil {
		return fmt.Errorf("failed to write snapshot header: %w", err)
	}
	for _, p := range products {
		record := []string{
			p.Name,
			p.Brand,
			p.Category,
			strconv.FormatFloat(p.Price, 'f', -1, 64),
			strconv.FormatFloat(p.Rating, 'f', -1, 64),
			savedAt,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write snapshot record: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush snapshot file: %w", err)
	}
	return nil
}
