package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pawprint/internal/adapters/driven/config/env"
	"github.com/custodia-labs/pawprint/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/pawprint/internal/core/domain"
	"github.com/custodia-labs/pawprint/internal/core/ports/driven"
)

func TestSettingsService_GetDefaults(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore(), nil)

	assert.Equal(t, domain.DefaultSettings(), svc.Get())
	assert.False(t, svc.Get().HasCredentials())
}

func TestSettingsService_GetFromConfig(t *testing.T) {
	store := memory.NewConfigStore()
	require.NoError(t, store.Set(driven.ConfigKeyAPIKey, "k"))
	require.NoError(t, store.Set(driven.ConfigKeyAPISecret, "s"))
	require.NoError(t, store.Set(driven.ConfigKeyBaseURL, "http://localhost:8080"))
	require.NoError(t, store.Set(driven.ConfigKeyTimeoutSeconds, int64(3)))
	require.NoError(t, store.Set(driven.ConfigKeyDBPath, "/tmp/p.db"))
	require.NoError(t, store.Set(driven.ConfigKeyHistoryLimit, 7))

	got := NewSettingsService(store, nil).Get()

	assert.Equal(t, domain.Settings{
		APIKey:       "k",
		APISecret:    "s",
		BaseURL:      "http://localhost:8080",
		Timeout:      3 * time.Second,
		DBPath:       "/tmp/p.db",
		HistoryLimit: 7,
	}, got)
	assert.True(t, got.HasCredentials())
}

func TestSettingsService_EnvironmentWins(t *testing.T) {
	store := memory.NewConfigStoreWith(map[string]any{
		driven.ConfigKeyAPIKey: "file-key",
		driven.ConfigKeyDBPath: "/file/pets.db",
	})
	overlay := env.NewOverlayFromMap(map[string]string{
		env.VarAPIKey: "env-key",
		env.VarDBPath: "/env/pets.db",
	})

	got := NewSettingsService(store, overlay).Get()

	assert.Equal(t, "env-key", got.APIKey)
	assert.Equal(t, "/env/pets.db", got.DBPath)
}

func TestSettingsService_OverlaySeesConfigValues(t *testing.T) {
	store := memory.NewConfigStore()
	require.NoError(t, store.Set(driven.ConfigKeyBaseURL, "http://file"))

	var seen domain.Settings
	overlay := &mockOverlay{apply: func(s domain.Settings) domain.Settings {
		seen = s
		return s
	}}
	NewSettingsService(store, overlay).Get()

	assert.Equal(t, "http://file", seen.BaseURL)
}

func TestSettingsService_Set(t *testing.T) {
	store := memory.NewConfigStore()
	svc := NewSettingsService(store, nil)

	require.NoError(t, svc.Set(driven.ConfigKeyBaseURL, " http://example.org "))
	require.NoError(t, svc.Set(driven.ConfigKeyHistoryLimit, "15"))
	require.NoError(t, svc.Set(driven.ConfigKeyTimeoutSeconds, "4"))

	assert.Equal(t, "http://example.org", store.GetString(driven.ConfigKeyBaseURL))
	assert.Equal(t, 15, store.GetInt(driven.ConfigKeyHistoryLimit))
	assert.Equal(t, 4*time.Second, svc.Get().Timeout)
}

func TestSettingsService_SetRejectsInvalid(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore(), nil)

	tests := []struct {
		key   string
		value string
	}{
		{"unknown.key", "x"},
		{"", "x"},
		{driven.ConfigKeyHistoryLimit, "many"},
		{driven.ConfigKeyHistoryLimit, "0"},
		{driven.ConfigKeyTimeoutSeconds, "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			err := svc.Set(tt.key, tt.value)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestSettingsService_SetCredentials(t *testing.T) {
	store := memory.NewConfigStore()
	svc := NewSettingsService(store, nil)

	require.NoError(t, svc.SetCredentials(" key ", " secret "))
	assert.Equal(t, "key", store.GetString(driven.ConfigKeyAPIKey))
	assert.Equal(t, "secret", store.GetString(driven.ConfigKeyAPISecret))

	assert.ErrorIs(t, svc.SetCredentials("key", ""), domain.ErrInvalidInput)
	assert.ErrorIs(t, svc.SetCredentials("", "secret"), domain.ErrInvalidInput)
}

func TestSettingsService_ConfigPath(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore(), nil)
	assert.Equal(t, ":memory:", svc.ConfigPath())
}
