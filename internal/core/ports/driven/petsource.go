package driven

import (
	"context"

	"github.com/custodia-labs/pawprint/internal/core/domain"
)

// PetSource searches an adoptable-animal listing.
//
// Search has no error return: implementations must recover every failure of
// the remote service locally and degrade to a well-formed (possibly sample)
// page.
type PetSource interface {
	Search(ctx context.Context, query domain.SearchQuery) domain.PetPage
}
