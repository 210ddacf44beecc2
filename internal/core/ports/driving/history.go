package driving

import (
	"context"

	"github.com/custodia-labs/pawprint/internal/core/domain"
)

// HistoryService exposes the search history log.
type HistoryService interface {
	// List returns up to limit entries, most recent first.
	// A non-positive limit uses the configured default.
	List(ctx context.Context, limit int) ([]domain.HistoryEntry, error)

	// Clear removes every entry.
	Clear(ctx context.Context) error
}
