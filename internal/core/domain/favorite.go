package domain

import "time"

// Favorite is a Pet the user bookmarked into local storage.
// It is keyed by Pet.ID; saving the same ID again replaces every field.
type Favorite struct {
	Pet

	// CreatedAt is assigned by the store on every save and drives the
	// default most-recent-first ordering.
	CreatedAt time.Time `json:"created_at"`
}
