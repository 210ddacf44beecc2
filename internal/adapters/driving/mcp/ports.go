package mcp

import (
	"github.com/custodia-labs/pawprint/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Pets searches listings.
	Pets driving.PetSearchService

	// Favorites manages bookmarked pets.
	Favorites driving.FavoriteService

	// History exposes the search log. Optional; the search_history tool is
	// only registered when set.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Pets == nil {
		return ErrMissingPetService
	}
	if p.Favorites == nil {
		return ErrMissingFavoriteService
	}
	return nil
}
