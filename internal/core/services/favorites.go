package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/pawprint/internal/core/domain"
	"github.com/custodia-labs/pawprint/internal/core/ports/driven"
	"github.com/custodia-labs/pawprint/internal/core/ports/driving"
)

// Ensure FavoriteService implements the interface.
var _ driving.FavoriteService = (*FavoriteService)(nil)

// FavoriteService manages bookmarked pets.
type FavoriteService struct {
	store driven.FavoriteStore
}

// NewFavoriteService creates a new favorite service.
func NewFavoriteService(store driven.FavoriteStore) *FavoriteService {
	return &FavoriteService{store: store}
}

// Save validates pet and upserts it. Invalid pets never reach the store.
func (s *FavoriteService) Save(ctx context.Context, pet domain.Pet) error {
	pet.ID = strings.TrimSpace(pet.ID)
	pet.Name = strings.TrimSpace(pet.Name)
	if err := pet.Validate(); err != nil {
		return err
	}
	if err := s.store.Upsert(ctx, pet); err != nil {
		return fmt.Errorf("save favorite %s: %w", pet.ID, err)
	}
	return nil
}

// List returns all favorites, most recently saved first.
func (s *FavoriteService) List(ctx context.Context) ([]domain.Favorite, error) {
	favs, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return favs, nil
}

// Remove deletes a favorite. Unknown IDs are not an error.
func (s *FavoriteService) Remove(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: id is required", domain.ErrInvalidInput)
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("remove favorite %s: %w", id, err)
	}
	return nil
}

// Export writes every favorite to w as CSV.
func (s *FavoriteService) Export(ctx context.Context, w io.Writer) error {
	if err := s.store.ExportCSV(ctx, w); err != nil {
		return fmt.Errorf("export favorites: %w", err)
	}
	return nil
}
