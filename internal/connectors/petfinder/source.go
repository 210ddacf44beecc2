package petfinder

import (
	"context"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/pawprint/internal/core/domain"
	"github.com/custodia-labs/pawprint/internal/core/ports/driven"
	"github.com/custodia-labs/pawprint/internal/logger"
)

// Mode is the operating mode of a Source.
type Mode int

const (
	// ModeOffline serves the sample catalog only.
	ModeOffline Mode = iota
	// ModeLive queries the Petfinder API.
	ModeLive
)

func (m Mode) String() string {
	if m == ModeLive {
		return "live"
	}
	return "offline"
}

// Ensure Source implements the interface.
var _ driven.PetSource = (*Source)(nil)

// Source searches Petfinder listings.
// It is safe for concurrent use; concurrent searches are not de-duplicated.
type Source struct {
	cfg     Config
	mode    Mode
	oauth   *clientcredentials.Config
	limiter *rate.Limiter

	// token is absent (nil) until the first exchange and is only ever
	// replaced by a later exchange.
	tokenMu sync.Mutex
	token   *oauth2.Token
}

// New creates a Source. The mode is decided here and never changes: live
// when both credentials are set, offline otherwise.
func New(cfg Config) *Source {
	cfg = cfg.withDefaults()

	s := &Source{
		cfg:     cfg,
		mode:    ModeOffline,
		limiter: newLimiter(cfg.RequestsPerSecond),
	}
	if cfg.hasCredentials() {
		s.mode = ModeLive
		s.oauth = newTokenConfig(cfg)
	}

	logger.Debug("petfinder source ready", "mode", s.mode, "base_url", cfg.BaseURL)
	return s
}

// Mode reports the operating mode chosen at construction.
func (s *Source) Mode() Mode {
	return s.mode
}

// Search returns one page of pets matching q. It never fails: in offline
// mode, or when any step of a live search fails, it returns the sample
// catalog filtered by q.Type as a single page.
func (s *Source) Search(ctx context.Context, q domain.SearchQuery) domain.PetPage {
	q = q.Normalize()

	if s.mode == ModeOffline {
		return offlineSearch(q.Type)
	}

	page, err := s.searchLive(ctx, q)
	if err != nil {
		logger.Debug("petfinder search failed, serving sample catalog", "error", err)
		return offlineSearch(q.Type)
	}
	return page
}
