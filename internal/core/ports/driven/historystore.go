package driven

import (
	"context"

	"github.com/custodia-labs/pawprint/internal/core/domain"
)

// HistoryStore is an append-only log of executed searches.
type HistoryStore interface {
	// Append records one query. Absent optional fields are stored as null.
	Append(ctx context.Context, query domain.SearchQuery) error

	// List returns up to limit entries, most recent first.
	List(ctx context.Context, limit int) ([]domain.HistoryEntry, error)

	// Clear removes every entry.
	Clear(ctx context.Context) error
}
