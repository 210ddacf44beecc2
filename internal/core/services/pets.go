package services

import (
	"context"

	"github.com/custodia-labs/pawprint/internal/core/domain"
	"github.com/custodia-labs/pawprint/internal/core/ports/driven"
	"github.com/custodia-labs/pawprint/internal/core/ports/driving"
	"github.com/custodia-labs/pawprint/internal/logger"
)

// Ensure PetService implements the interface.
var _ driving.PetSearchService = (*PetService)(nil)

// PetService runs listing searches and records them in the history log.
type PetService struct {
	source  driven.PetSource
	history driven.HistoryStore
}

// NewPetService creates a new pet search service.
// The history store is optional (can be nil).
func NewPetService(source driven.PetSource, history driven.HistoryStore) *PetService {
	return &PetService{
		source:  source,
		history: history,
	}
}

// Search normalizes the query, asks the source for a page and logs the
// query to history. History failures are logged and never returned.
func (s *PetService) Search(ctx context.Context, query domain.SearchQuery) domain.PetPage {
	logger.Section("Pet Search")
	query = query.Normalize()
	logger.Debug("searching listings",
		"type", query.Type, "location", query.Location, "page", query.Page, "page_size", query.PageSize)

	page := s.source.Search(ctx, query)
	logger.Debug("search complete", "count", page.Count, "page", page.Page, "total_pages", page.TotalPages)

	if s.history != nil {
		if err := s.history.Append(ctx, query); err != nil {
			logger.Warn("could not record search history", "error", err)
		}
	}
	return page
}
