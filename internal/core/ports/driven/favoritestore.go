package driven

import (
	"context"
	"io"

	"github.com/custodia-labs/pawprint/internal/core/domain"
)

// FavoriteStore persists bookmarked pets keyed by ID.
// Every error it returns wraps domain.ErrStorage.
type FavoriteStore interface {
	// Upsert inserts the pet or replaces every field of the existing row
	// with the same ID. The creation timestamp is reassigned.
	Upsert(ctx context.Context, pet domain.Pet) error

	// List returns all favorites, most recently saved first.
	List(ctx context.Context) ([]domain.Favorite, error)

	// Delete removes a favorite. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error

	// ExportCSV writes every favorite as CSV, header row first.
	ExportCSV(ctx context.Context, w io.Writer) error
}
