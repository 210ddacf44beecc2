package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/pawprint/internal/core/domain"
	"github.com/custodia-labs/pawprint/internal/core/ports/driven"
	"github.com/custodia-labs/pawprint/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService reads and clears the search history log.
type HistoryService struct {
	store        driven.HistoryStore
	defaultLimit int
}

// NewHistoryService creates a new history service. A non-positive
// defaultLimit falls back to domain.DefaultHistoryLimit.
func NewHistoryService(store driven.HistoryStore, defaultLimit int) *HistoryService {
	if defaultLimit <= 0 {
		defaultLimit = domain.DefaultHistoryLimit
	}
	return &HistoryService{
		store:        store,
		defaultLimit: defaultLimit,
	}
}

// List returns up to limit entries, most recent first.
func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	entries, err := s.store.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list search history: %w", err)
	}
	return entries, nil
}

// Clear removes every history entry.
func (s *HistoryService) Clear(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear search history: %w", err)
	}
	return nil
}
