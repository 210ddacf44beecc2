package petfinder

import (
	"net/http"
	"strings"
	"time"

	"github.com/custodia-labs/pawprint/internal/core/domain"
)

// DefaultRequestsPerSecond stays under Petfinder's documented 50 req/s.
const DefaultRequestsPerSecond = 25

// Config holds the settings of a Petfinder source.
type Config struct {
	// APIKey and APISecret are the client credentials. The source is live
	// only when both are non-empty.
	APIKey    string
	APISecret string

	// BaseURL is the API root. Default: https://api.petfinder.com/v2
	BaseURL string

	// Timeout bounds every HTTP request. Default: 10s
	Timeout time.Duration

	// RequestsPerSecond throttles outgoing requests. Default: 25
	RequestsPerSecond float64

	// HTTPClient overrides the client used for all calls. Its Timeout is
	// left untouched.
	HTTPClient *http.Client
}

// ConfigFromSettings builds a source config from resolved settings.
func ConfigFromSettings(s domain.Settings) Config {
	return Config{
		APIKey:    s.APIKey,
		APISecret: s.APISecret,
		BaseURL:   s.BaseURL,
		Timeout:   s.Timeout,
	}
}

// withDefaults fills every unset field.
func (c Config) withDefaults() Config {
	c.APIKey = strings.TrimSpace(c.APIKey)
	c.APISecret = strings.TrimSpace(c.APISecret)
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.BaseURL == "" {
		c.BaseURL = domain.DefaultAPIBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = domain.DefaultRequestTimeout
	}
	if c.RequestsPerSecond <= 0 {
		c.RequestsPerSecond = DefaultRequestsPerSecond
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	return c
}

func (c Config) hasCredentials() bool {
	return c.APIKey != "" && c.APISecret != ""
}

func (c Config) tokenURL() string {
	return c.BaseURL + "/oauth2/token"
}

func (c Config) animalsURL() string {
	return c.BaseURL + "/animals"
}
