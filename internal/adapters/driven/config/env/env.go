// Package env reads configuration overrides from the process environment,
// optionally seeded from a .env file.
package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/pawprint/internal/core/domain"
	"github.com/custodia-labs/pawprint/internal/core/ports/driven"
	"github.com/custodia-labs/pawprint/internal/logger"
)

// Recognised environment variables.
const (
	VarAPIKey         = "PETFINDER_API_KEY"
	VarAPISecret      = "PETFINDER_API_SECRET"
	VarBaseURL        = "PETFINDER_BASE_URL"
	VarTimeoutSeconds = "PETFINDER_TIMEOUT_SECONDS"
	VarDBPath         = "PETS_DB_PATH"
)

// LoadDotEnv loads variables from the given .env files (default ".env")
// into the process environment. Variables already set are not overwritten,
// and missing files are not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading %s: %w", p, err)
		}
		logger.Debug("loaded environment file", "path", p)
	}
	return nil
}

// Ensure Overlay implements the interface.
var _ driven.SettingsOverlay = (*Overlay)(nil)

// Overlay applies environment variables over resolved settings.
type Overlay struct {
	lookup func(string) (string, bool)
}

// NewOverlay creates an overlay reading the process environment.
func NewOverlay() *Overlay {
	return &Overlay{lookup: os.LookupEnv}
}

// NewOverlayFromMap creates an overlay reading from a fixed map.
func NewOverlayFromMap(vars map[string]string) *Overlay {
	return &Overlay{lookup: func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}}
}

// Apply returns base with every non-empty environment override applied.
func (o *Overlay) Apply(base domain.Settings) domain.Settings {
	s := base
	s.APIKey = o.getString(VarAPIKey, s.APIKey)
	s.APISecret = o.getString(VarAPISecret, s.APISecret)
	s.BaseURL = o.getString(VarBaseURL, s.BaseURL)
	s.DBPath = o.getString(VarDBPath, s.DBPath)
	if secs := o.getInt(VarTimeoutSeconds, 0); secs > 0 {
		s.Timeout = time.Duration(secs) * time.Second
	}
	return s
}

func (o *Overlay) getString(key, defaultValue string) string {
	if value, exists := o.lookup(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func (o *Overlay) getInt(key string, defaultValue int) int {
	valueStr, exists := o.lookup(key)
	if !exists || valueStr == "" {
		return defaultValue
	}

	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		logger.Warn("ignoring non-integer environment variable", "key", key, "value", valueStr)
		return defaultValue
	}
	return valueInt
}
