package services

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/pawprint/internal/core/domain"
	"github.com/custodia-labs/pawprint/internal/core/ports/driven"
	"github.com/custodia-labs/pawprint/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// intKeys are stored as integers; every other known key is a string.
var intKeys = map[string]bool{
	driven.ConfigKeyTimeoutSeconds: true,
	driven.ConfigKeyHistoryLimit:   true,
}

// KnownConfigKeys lists every key accepted by Set, in display order.
var KnownConfigKeys = []string{
	driven.ConfigKeyAPIKey,
	driven.ConfigKeyAPISecret,
	driven.ConfigKeyBaseURL,
	driven.ConfigKeyTimeoutSeconds,
	driven.ConfigKeyDBPath,
	driven.ConfigKeyHistoryLimit,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	overlay     driven.SettingsOverlay
}

// NewSettingsService creates a new settings service.
// The overlay is optional (can be nil); when set its values win.
func NewSettingsService(configStore driven.ConfigStore, overlay driven.SettingsOverlay) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		overlay:     overlay,
	}
}

// Get resolves settings: defaults, then the config file, then the overlay.
func (s *SettingsService) Get() domain.Settings {
	settings := domain.DefaultSettings()

	if v := s.configStore.GetString(driven.ConfigKeyAPIKey); v != "" {
		settings.APIKey = v
	}
	if v := s.configStore.GetString(driven.ConfigKeyAPISecret); v != "" {
		settings.APISecret = v
	}
	if v := s.configStore.GetString(driven.ConfigKeyBaseURL); v != "" {
		settings.BaseURL = v
	}
	if v := s.configStore.GetInt(driven.ConfigKeyTimeoutSeconds); v > 0 {
		settings.Timeout = time.Duration(v) * time.Second
	}
	if v := s.configStore.GetString(driven.ConfigKeyDBPath); v != "" {
		settings.DBPath = v
	}
	if v := s.configStore.GetInt(driven.ConfigKeyHistoryLimit); v > 0 {
		settings.HistoryLimit = v
	}

	if s.overlay != nil {
		settings = s.overlay.Apply(settings)
	}
	return settings
}

// Set validates and persists a single key.
func (s *SettingsService) Set(key, value string) error {
	key = strings.TrimSpace(key)
	if !slices.Contains(KnownConfigKeys, key) {
		return fmt.Errorf("%w: unknown config key %q", domain.ErrInvalidInput, key)
	}

	var stored any = strings.TrimSpace(value)
	if intKeys[key] {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidInput, key)
		}
		stored = n
	}

	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// SetCredentials persists both client credentials.
func (s *SettingsService) SetCredentials(apiKey, apiSecret string) error {
	apiKey, apiSecret = strings.TrimSpace(apiKey), strings.TrimSpace(apiSecret)
	if apiKey == "" || apiSecret == "" {
		return fmt.Errorf("%w: both api key and api secret are required", domain.ErrInvalidInput)
	}
	if err := s.configStore.Set(driven.ConfigKeyAPIKey, apiKey); err != nil {
		return fmt.Errorf("save api key: %w", err)
	}
	if err := s.configStore.Set(driven.ConfigKeyAPISecret, apiSecret); err != nil {
		return fmt.Errorf("save api secret: %w", err)
	}
	return nil
}

// ConfigPath returns the configuration file location.
func (s *SettingsService) ConfigPath() string {
	return s.configStore.Path()
}
