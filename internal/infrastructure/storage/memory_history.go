package storage

import (
	"context"
	"sync"

	"github.com/yourusername/fashion-recommender-bot/internal/domain/entity"
	"github.com/yourusername/fashion-recommender-bot/internal/domain/repository"
)

type memoryHistoryRepository struct {
	mu      sync.RWMutex
	entries []entity.HistoryEntry
	written bool // Replace hech bo'lmaganda bir marta chaqirilganmi
}

// NewMemoryHistoryRepository in-memory tarix repository yaratish (testlar uchun)
func NewMemoryHistoryRepository() repository.HistoryRepository {
	return &memoryHistoryRepository{}
}

// Load butun tarixni olish
func (m *memoryHistoryRepository) Load(ctx context.Context) ([]entity.HistoryEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.written {
		return nil, repository.ErrHistoryNotFound
	}

	entries := make([]entity.HistoryEntry, len(m.entries))
	copy(entries, m.entries)
	return entries, nil
}

// Replace tarixni to'liq almashtirish
func (m *memoryHistoryRepository) Replace(ctx context.Context, entries []entity.HistoryEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = make([]entity.HistoryEntry, len(entries))
	copy(m.entries, entries)
	m.written = true
	return nil
}
