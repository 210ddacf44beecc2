package petfinder

import (
	"context"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

func newTokenConfig(cfg Config) *clientcredentials.Config {
	return &clientcredentials.Config{
		ClientID:     cfg.APIKey,
		ClientSecret: cfg.APISecret,
		TokenURL:     cfg.tokenURL(),
		AuthStyle:    oauth2.AuthStyleInParams,
	}
}

// accessToken returns the held token, exchanging credentials for a new one
// when none is held or refresh is set. Expiry is not checked here; a stale
// token surfaces as a 401 from the listing endpoint.
func (s *Source) accessToken(ctx context.Context, refresh bool) (string, error) {
	if !refresh {
		s.tokenMu.Lock()
		tok := s.token
		s.tokenMu.Unlock()
		if tok != nil {
			return tok.AccessToken, nil
		}
	}

	if err := s.wait(ctx, "token exchange"); err != nil {
		return "", err
	}

	// Route the exchange through the source's client so the timeout applies.
	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.cfg.HTTPClient)
	tok, err := s.oauth.Token(ctx)
	if err != nil {
		return "", &Error{Kind: KindAuth, Op: "token exchange", Err: err}
	}

	s.tokenMu.Lock()
	s.token = tok
	s.tokenMu.Unlock()

	return tok.AccessToken, nil
}

// hasToken reports whether a token is currently held.
func (s *Source) hasToken() bool {
	s.tokenMu.Lock()
	defer s.tokenMu.Unlock()
	return s.token != nil
}
