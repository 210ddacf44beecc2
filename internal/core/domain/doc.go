// Package domain defines the core business entities for pawprint.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Pet: A normalized adoptable-animal record, source-agnostic
//   - Favorite: A Pet bookmarked into local storage
//   - SearchQuery: The filters of one listing search
//   - HistoryEntry: A logged SearchQuery
//   - PetPage: One page of search results
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
