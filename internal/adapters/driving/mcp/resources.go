package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for pawprint resources.
	uriScheme = "pawprint://"

	favoritesCSVURI  = uriScheme + "favorites.csv"
	favoritesJSONURI = uriScheme + "favorites"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         favoritesCSVURI,
		Name:        "favorites-csv",
		Description: "All favorites as CSV, most recently saved first",
		MIMEType:    "text/csv",
	}, s.handleFavoritesCSVResource)

	s.server.AddResource(&mcp.Resource{
		URI:         favoritesJSONURI,
		Name:        "favorites",
		Description: "All favorites as JSON, most recently saved first",
		MIMEType:    "application/json",
	}, s.handleFavoritesResource)
}

// handleFavoritesCSVResource returns the CSV export of all favorites.
func (s *Server) handleFavoritesCSVResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	var buf bytes.Buffer
	if err := s.ports.Favorites.Export(ctx, &buf); err != nil {
		return nil, fmt.Errorf("exporting favorites: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/csv",
			Text:     buf.String(),
		}},
	}, nil
}

// handleFavoritesResource returns all favorites as JSON.
func (s *Server) handleFavoritesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	favs, err := s.ports.Favorites.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing favorites: %w", err)
	}

	data, err := json.MarshalIndent(favs, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling favorites: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
