package memory

import (
	"context"
	"sync"
	"time"

	"github.com/custodia-labs/pawprint/internal/core/domain"
	"github.com/custodia-labs/pawprint/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory, append-only search log.
type HistoryStore struct {
	mu      sync.RWMutex
	entries []domain.HistoryEntry
	nextID  int64
	now     func() time.Time
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Append records one search.
func (s *HistoryStore) Append(_ context.Context, query domain.SearchQuery) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.entries = append(s.entries, domain.HistoryEntry{
		ID:          s.nextID,
		SearchQuery: query,
		CreatedAt:   s.now(),
	})
	return nil
}

// List returns up to limit entries, most recent first.
// A non-positive limit falls back to domain.DefaultHistoryLimit.
func (s *HistoryStore) List(_ context.Context, limit int) ([]domain.HistoryEntry, error) {
	if limit <= 0 {
		limit = domain.DefaultHistoryLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	// Entries are appended in ID order and the clock only moves forward, so
	// walking backwards yields created_at DESC, id DESC.
	result := make([]domain.HistoryEntry, 0, min(limit, len(s.entries)))
	for i := len(s.entries) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, s.entries[i])
	}
	return result, nil
}

// Clear removes all history entries.
func (s *HistoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	return nil
}
