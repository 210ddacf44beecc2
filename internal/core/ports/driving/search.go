package driving

import (
	"context"

	"github.com/custodia-labs/pawprint/internal/core/domain"
)

// PetSearchService provides listing searches to external actors.
type PetSearchService interface {
	// Search returns one page of pets matching the query. It never fails:
	// when the listing service is unreachable the page holds sample data.
	// The query is logged to search history on a best-effort basis.
	Search(ctx context.Context, query domain.SearchQuery) domain.PetPage
}
