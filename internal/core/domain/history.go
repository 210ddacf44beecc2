package domain

import "time"

// DefaultHistoryLimit is used when a history listing asks for no limit.
const DefaultHistoryLimit = 50

// HistoryEntry is one logged search. Entries are append-only and carry no
// relation to favorites.
type HistoryEntry struct {
	ID int64 `json:"id"`
	SearchQuery
	CreatedAt time.Time `json:"created_at"`
}
