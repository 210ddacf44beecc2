// Package mcp provides an MCP (Model Context Protocol) server adapter for pawprint.
// It lets AI assistants search adoptable pets, manage favorites and read the
// search history.
package mcp

import "errors"

var (
	// ErrMissingPetService is returned when the pet search service is not provided.
	ErrMissingPetService = errors.New("mcp: pet search service is required")

	// ErrMissingFavoriteService is returned when the favorite service is not provided.
	ErrMissingFavoriteService = errors.New("mcp: favorite service is required")
)
