package mcp

import (
	"context"
	"io"

	"github.com/custodia-labs/pawprint/internal/core/domain"
	"github.com/custodia-labs/pawprint/internal/core/ports/driving"
)

// mockPetService is a mock implementation of driving.PetSearchService.
type mockPetService struct {
	page      domain.PetPage
	lastQuery domain.SearchQuery
	calls     int
}

func (m *mockPetService) Search(_ context.Context, query domain.SearchQuery) domain.PetPage {
	m.calls++
	m.lastQuery = query
	return m.page
}

// mockFavoriteService is a mock implementation of driving.FavoriteService.
type mockFavoriteService struct {
	favorites []domain.Favorite
	csv       string
	saved     []domain.Pet
	removed   []string
	err       error
}

func (m *mockFavoriteService) Save(_ context.Context, pet domain.Pet) error {
	if m.err != nil {
		return m.err
	}
	if err := pet.Validate(); err != nil {
		return err
	}
	m.saved = append(m.saved, pet)
	return nil
}

func (m *mockFavoriteService) List(_ context.Context) ([]domain.Favorite, error) {
	return m.favorites, m.err
}

func (m *mockFavoriteService) Remove(_ context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	m.removed = append(m.removed, id)
	return nil
}

func (m *mockFavoriteService) Export(_ context.Context, w io.Writer) error {
	if m.err != nil {
		return m.err
	}
	_, err := io.WriteString(w, m.csv)
	return err
}

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	entries   []domain.HistoryEntry
	lastLimit int
	err       error
}

func (m *mockHistoryService) List(_ context.Context, limit int) ([]domain.HistoryEntry, error) {
	m.lastLimit = limit
	return m.entries, m.err
}

func (m *mockHistoryService) Clear(_ context.Context) error {
	return m.err
}

// Verify interface compliance.
var (
	_ driving.PetSearchService = (*mockPetService)(nil)
	_ driving.FavoriteService  = (*mockFavoriteService)(nil)
	_ driving.HistoryService   = (*mockHistoryService)(nil)
)

// newTestServer builds a server over fresh mocks with every port set.
func newTestServer(pets *mockPetService, favs *mockFavoriteService, history *mockHistoryService) *Server {
	ports := &Ports{Pets: pets, Favorites: favs}
	if history != nil {
		ports.History = history
	}
	server, err := NewServer(ports)
	if err != nil {
		panic(err)
	}
	return server
}
