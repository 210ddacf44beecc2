package domain

import (
	"strings"
	"time"
)

// DefaultAPIBaseURL is the Petfinder v2 API root.
const DefaultAPIBaseURL = "https://api.petfinder.com/v2"

// DefaultRequestTimeout bounds every call to the listing service.
const DefaultRequestTimeout = 10 * time.Second

// Settings is the resolved runtime configuration.
type Settings struct {
	// APIKey and APISecret are the listing service client credentials.
	// Both must be set for live mode.
	APIKey    string
	APISecret string

	// BaseURL is the listing API root.
	BaseURL string

	// Timeout is the fixed per-request network timeout.
	Timeout time.Duration

	// DBPath is the favorites database file. Empty means the default location.
	DBPath string

	// HistoryLimit is the default number of history entries listed.
	HistoryLimit int
}

// DefaultSettings returns settings with every default applied.
func DefaultSettings() Settings {
	return Settings{
		BaseURL:      DefaultAPIBaseURL,
		Timeout:      DefaultRequestTimeout,
		HistoryLimit: DefaultHistoryLimit,
	}
}

// HasCredentials reports whether both client credentials are present.
func (s Settings) HasCredentials() bool {
	return strings.TrimSpace(s.APIKey) != "" && strings.TrimSpace(s.APISecret) != ""
}
