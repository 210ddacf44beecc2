package driving

import (
	"context"
	"io"

	"github.com/custodia-labs/pawprint/internal/core/domain"
)

// FavoriteService manages bookmarked pets.
type FavoriteService interface {
	// Save validates and upserts a favorite. A pet without ID or name is
	// rejected with domain.ErrInvalidInput before storage is touched.
	Save(ctx context.Context, pet domain.Pet) error

	// List returns all favorites, most recently saved first.
	List(ctx context.Context) ([]domain.Favorite, error)

	// Remove deletes a favorite by ID. Unknown IDs are ignored.
	Remove(ctx context.Context, id string) error

	// Export writes all favorites to w as CSV.
	Export(ctx context.Context, w io.Writer) error
}
