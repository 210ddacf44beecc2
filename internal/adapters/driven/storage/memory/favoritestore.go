package memory

import (
	"context"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/custodia-labs/pawprint/internal/adapters/driven/storage/export"
	"github.com/custodia-labs/pawprint/internal/core/domain"
	"github.com/custodia-labs/pawprint/internal/core/ports/driven"
)

// Ensure FavoriteStore implements the interface.
var _ driven.FavoriteStore = (*FavoriteStore)(nil)

type favoriteEntry struct {
	fav domain.Favorite
	seq uint64
}

// FavoriteStore is an in-memory implementation of driven.FavoriteStore.
// Favorites list most recently saved first; equal timestamps fall back to
// save order.
type FavoriteStore struct {
	mu        sync.RWMutex
	favorites map[string]favoriteEntry
	seq       uint64
	now       func() time.Time
}

// NewFavoriteStore creates a new in-memory favorite store.
func NewFavoriteStore() *FavoriteStore {
	return &FavoriteStore{
		favorites: make(map[string]favoriteEntry),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Upsert stores a favorite, replacing any existing entry with the same ID.
func (s *FavoriteStore) Upsert(_ context.Context, pet domain.Pet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.favorites[pet.ID] = favoriteEntry{
		fav: domain.Favorite{Pet: pet, CreatedAt: s.now()},
		seq: s.seq,
	}
	return nil
}

// List returns all favorites, most recently saved first.
func (s *FavoriteStore) List(_ context.Context) ([]domain.Favorite, error) {
	s.mu.RLock()
	entries := make([]favoriteEntry, 0, len(s.favorites))
	for _, e := range s.favorites {
		entries = append(entries, e)
	}
	s.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.fav.CreatedAt.Equal(b.fav.CreatedAt) {
			return a.fav.CreatedAt.After(b.fav.CreatedAt)
		}
		return a.seq > b.seq
	})

	result := make([]domain.Favorite, len(entries))
	for i, e := range entries {
		result[i] = e.fav
	}
	return result, nil
}

// Delete removes a favorite. Missing IDs are not an error.
func (s *FavoriteStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.favorites, id)
	return nil
}

// ExportCSV writes all favorites as CSV, in List order.
func (s *FavoriteStore) ExportCSV(ctx context.Context, w io.Writer) error {
	favorites, err := s.List(ctx)
	if err != nil {
		return err
	}
	return export.WriteFavoritesCSV(w, favorites)
}
