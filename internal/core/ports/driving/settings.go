package driving

import "github.com/custodia-labs/pawprint/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get resolves current settings from the config file and environment.
	Get() domain.Settings

	// Set persists a single configuration key.
	Set(key, value string) error

	// SetCredentials persists the listing service client credentials.
	SetCredentials(apiKey, apiSecret string) error

	// ConfigPath returns the configuration file location.
	ConfigPath() string
}
