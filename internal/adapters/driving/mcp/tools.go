package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/pawprint/internal/core/domain"
)

// SearchPetsInput is the input schema for the search_pets tool.
type SearchPetsInput struct {
	Type     string `json:"type,omitempty" jsonschema:"species to search for, e.g. dog or cat"`
	Location string `json:"location,omitempty" jsonschema:"city, state or postal code to search near"`
	Age      string `json:"age,omitempty" jsonschema:"age group: baby, young, adult or senior"`
	Breed    string `json:"breed,omitempty" jsonschema:"breed name"`
	Size     string `json:"size,omitempty" jsonschema:"size: small, medium, large or xlarge"`
	Gender   string `json:"gender,omitempty" jsonschema:"male or female"`
	Page     int    `json:"page,omitempty" jsonschema:"1-based page number (default 1)"`
	Limit    int    `json:"limit,omitempty" jsonschema:"results per page (default 24, max 100)"`
}

// ListFavoritesInput is the input schema for the list_favorites tool.
type ListFavoritesInput struct{}

// FavoritesOutput is the output schema for the list_favorites tool.
type FavoritesOutput struct {
	Favorites []domain.Favorite `json:"favorites"`
	Count     int               `json:"count"`
}

// SaveFavoriteInput is the input schema for the save_favorite tool.
type SaveFavoriteInput struct {
	ID          string `json:"id" jsonschema:"listing identifier"`
	Name        string `json:"name" jsonschema:"pet name"`
	Type        string `json:"type,omitempty" jsonschema:"species"`
	Breed       string `json:"breed,omitempty" jsonschema:"primary breed"`
	Age         string `json:"age,omitempty" jsonschema:"age group"`
	Contact     string `json:"contact,omitempty" jsonschema:"shelter contact email"`
	PhotoURL    string `json:"photo_url,omitempty" jsonschema:"photo URL"`
	Phone       string `json:"phone,omitempty" jsonschema:"shelter phone number"`
	Gender      string `json:"gender,omitempty" jsonschema:"gender"`
	Size        string `json:"size,omitempty" jsonschema:"size"`
	Description string `json:"description,omitempty" jsonschema:"free-text description"`
}

// RemoveFavoriteInput is the input schema for the remove_favorite tool.
type RemoveFavoriteInput struct {
	ID string `json:"id" jsonschema:"identifier of the favorite to remove"`
}

// FavoriteChangeOutput reports the favorite a tool call changed.
type FavoriteChangeOutput struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// SearchHistoryInput is the input schema for the search_history tool.
type SearchHistoryInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of entries to return"`
}

// SearchHistoryOutput is the output schema for the search_history tool.
type SearchHistoryOutput struct {
	Entries []domain.HistoryEntry `json:"entries"`
	Count   int                   `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_pets",
		Description: "Search adoptable pets. Returns sample data when the listing service is unavailable.",
	}, s.handleSearchPets)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_favorites",
		Description: "List favorited pets, most recently saved first",
	}, s.handleListFavorites)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "save_favorite",
		Description: "Save a pet to favorites, replacing any favorite with the same id",
	}, s.handleSaveFavorite)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "remove_favorite",
		Description: "Remove a pet from favorites",
	}, s.handleRemoveFavorite)

	if s.ports.History != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "search_history",
			Description: "List recent pet searches, most recent first",
		}, s.handleSearchHistory)
	}
}

// handleSearchPets handles the search_pets tool invocation.
func (s *Server) handleSearchPets(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchPetsInput,
) (*mcp.CallToolResult, domain.PetPage, error) {
	page := s.ports.Pets.Search(ctx, domain.SearchQuery{
		Type:     input.Type,
		Location: input.Location,
		Age:      input.Age,
		Breed:    input.Breed,
		Size:     input.Size,
		Gender:   input.Gender,
		Page:     input.Page,
		PageSize: input.Limit,
	})
	return nil, page, nil
}

// handleListFavorites handles the list_favorites tool invocation.
func (s *Server) handleListFavorites(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListFavoritesInput,
) (*mcp.CallToolResult, FavoritesOutput, error) {
	favs, err := s.ports.Favorites.List(ctx)
	if err != nil {
		return nil, FavoritesOutput{}, err
	}
	if favs == nil {
		favs = []domain.Favorite{}
	}
	return nil, FavoritesOutput{Favorites: favs, Count: len(favs)}, nil
}

// handleSaveFavorite handles the save_favorite tool invocation.
func (s *Server) handleSaveFavorite(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SaveFavoriteInput,
) (*mcp.CallToolResult, FavoriteChangeOutput, error) {
	pet := domain.Pet{
		ID:          input.ID,
		Name:        input.Name,
		Type:        input.Type,
		Breed:       input.Breed,
		Age:         input.Age,
		Contact:     input.Contact,
		PhotoURL:    input.PhotoURL,
		Phone:       input.Phone,
		Gender:      input.Gender,
		Size:        input.Size,
		Description: input.Description,
	}
	if err := s.ports.Favorites.Save(ctx, pet); err != nil {
		return nil, FavoriteChangeOutput{}, fmt.Errorf("saving favorite: %w", err)
	}
	return nil, FavoriteChangeOutput{ID: input.ID, Status: "saved"}, nil
}

// handleRemoveFavorite handles the remove_favorite tool invocation.
func (s *Server) handleRemoveFavorite(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RemoveFavoriteInput,
) (*mcp.CallToolResult, FavoriteChangeOutput, error) {
	if err := s.ports.Favorites.Remove(ctx, input.ID); err != nil {
		return nil, FavoriteChangeOutput{}, fmt.Errorf("removing favorite: %w", err)
	}
	return nil, FavoriteChangeOutput{ID: input.ID, Status: "removed"}, nil
}

// handleSearchHistory handles the search_history tool invocation.
func (s *Server) handleSearchHistory(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchHistoryInput,
) (*mcp.CallToolResult, SearchHistoryOutput, error) {
	entries, err := s.ports.History.List(ctx, input.Limit)
	if err != nil {
		return nil, SearchHistoryOutput{}, err
	}
	if entries == nil {
		entries = []domain.HistoryEntry{}
	}
	return nil, SearchHistoryOutput{Entries: entries, Count: len(entries)}, nil
}
