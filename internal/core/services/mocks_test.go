package services

import (
	"context"
	"io"
	"sync"

	"github.com/custodia-labs/pawprint/internal/core/domain"
)

// mockPetSource implements driven.PetSource for testing.
type mockPetSource struct {
	mu      sync.Mutex
	page    domain.PetPage
	queries []domain.SearchQuery
}

func (m *mockPetSource) Search(_ context.Context, q domain.SearchQuery) domain.PetPage {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries = append(m.queries, q)
	return m.page
}

// mockHistoryStore implements driven.HistoryStore for testing.
type mockHistoryStore struct {
	appended  []domain.SearchQuery
	entries   []domain.HistoryEntry
	lastLimit int
	appendErr error
	listErr   error
	clearErr  error
	cleared   bool
}

func (m *mockHistoryStore) Append(_ context.Context, q domain.SearchQuery) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.appended = append(m.appended, q)
	return nil
}

func (m *mockHistoryStore) List(_ context.Context, limit int) ([]domain.HistoryEntry, error) {
	m.lastLimit = limit
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.entries, nil
}

func (m *mockHistoryStore) Clear(_ context.Context) error {
	if m.clearErr != nil {
		return m.clearErr
	}
	m.cleared = true
	return nil
}

// mockFavoriteStore implements driven.FavoriteStore for testing.
type mockFavoriteStore struct {
	upserted  []domain.Pet
	deleted   []string
	favorites []domain.Favorite
	csv       string
	err       error
}

func (m *mockFavoriteStore) Upsert(_ context.Context, pet domain.Pet) error {
	if m.err != nil {
		return m.err
	}
	m.upserted = append(m.upserted, pet)
	return nil
}

func (m *mockFavoriteStore) List(_ context.Context) ([]domain.Favorite, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.favorites, nil
}

func (m *mockFavoriteStore) Delete(_ context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockFavoriteStore) ExportCSV(_ context.Context, w io.Writer) error {
	if m.err != nil {
		return m.err
	}
	_, err := io.WriteString(w, m.csv)
	return err
}

// mockOverlay implements driven.SettingsOverlay for testing.
type mockOverlay struct {
	apply func(domain.Settings) domain.Settings
}

func (m *mockOverlay) Apply(base domain.Settings) domain.Settings {
	return m.apply(base)
}
