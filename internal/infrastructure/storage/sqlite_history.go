package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/yourusername/fashion-recommender-bot/internal/domain/entity"
	"github.com/yourusername/fashion-recommender-bot/internal/domain/repository"
)

type sqliteHistoryRepository struct {
	db *sql.DB
}

// NewSQLiteHistoryRepository SQLite asosidagi tarix repository.
// CSV variant bilan bir xil kontrakt: Load / Replace, birinchi
// Replace gacha ErrHistoryNotFound.
func NewSQLiteHistoryRepository(dbPath string) (repository.HistoryRepository, error) {
	if dbPath == "" {
		return nil, errors.New("db path bo'sh bo'lmasligi kerak")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("db papkasini yaratib bo'lmadi: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite ochilmadi: %w", err)
	}

	if err := createHistorySchema(db); err != nil {
		return nil, err
	}

	return &sqliteHistoryRepository{db: db}, nil
}

func createHistorySchema(db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS history (
	id TEXT PRIMARY KEY,
	pos INTEGER NOT NULL,
	product_name TEXT NOT NULL,
	brand TEXT,
	category TEXT,
	price REAL NOT NULL,
	rating REAL NOT NULL,
	saved_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_history_pos ON history (pos);
CREATE TABLE IF NOT EXISTS history_meta (
	key TEXT PRIMARY KEY,
	value TEXT
);
`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("schema yaratib bo'lmadi: %w", err)
	}
	return nil
}

// Load butun tarixni pos tartibida o'qish
func (s *sqliteHistoryRepository) Load(ctx context.Context) ([]entity.HistoryEntry, error) {
	var initialized string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM history_meta WHERE key = 'initialized'`).Scan(&initialized)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrHistoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read history meta: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT product_name, brand, category, price, rating, saved_at
FROM history ORDER BY pos ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	entries := []entity.HistoryEntry{}
	for rows.Next() {
		var e entity.HistoryEntry
		var savedAt sql.NullString
		if err := rows.Scan(&e.Name, &e.Brand, &e.Category, &e.Price, &e.Rating, &savedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		e.SavedAt = entity.SavedAtMissing
		if savedAt.Valid && savedAt.String != "" {
			e.SavedAt = savedAt.String
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Replace tarixni bitta tranzaksiyada to'liq almashtirish
func (s *sqliteHistoryRepository) Replace(ctx context.Context, entries []entity.HistoryEntry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM history`); err != nil {
		tx.Rollback()
		return err
	}

	for pos, e := range entries {
		_, err := tx.ExecContext(ctx, `
INSERT INTO history (id, pos, product_name, brand, category, price, rating, saved_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			uuid.New().String(), pos, e.Name, e.Brand, e.Category, e.Price, e.Rating, e.SavedAt)
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	if _, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO history_meta (key, value) VALUES ('initialized', '1')`); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

// Close db ni yopish
func (s *sqliteHistoryRepository) Close() error {
	return s.db.Close()
}
