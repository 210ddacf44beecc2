package petfinder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/custodia-labs/pawprint/internal/core/domain"
)

// maxErrorBody caps how much of an error response is kept for the log.
const maxErrorBody = 512

// searchLive runs one live search. On a 401 it refreshes the token once and
// retries the request once; any further failure is returned.
func (s *Source) searchLive(ctx context.Context, q domain.SearchQuery) (domain.PetPage, error) {
	params := buildParams(q)

	token, err := s.accessToken(ctx, false)
	if err != nil {
		return domain.PetPage{}, err
	}

	payload, err := s.listAnimals(ctx, token, params)
	if IsUnauthorized(err) {
		token, err = s.accessToken(ctx, true)
		if err != nil {
			return domain.PetPage{}, err
		}
		payload, err = s.listAnimals(ctx, token, params)
	}
	if err != nil {
		return domain.PetPage{}, err
	}

	return toPage(payload, q), nil
}

// buildParams renders the listing query. q must already be normalized.
func buildParams(q domain.SearchQuery) url.Values {
	params := url.Values{}
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("limit", strconv.Itoa(q.PageSize))

	optional := []struct{ key, value string }{
		{"type", q.Type},
		{"location", q.Location},
		{"age", q.Age},
		{"breed", q.Breed},
		{"size", q.Size},
		{"gender", q.Gender},
	}
	for _, p := range optional {
		if p.value != "" {
			params.Set(p.key, p.value)
		}
	}
	return params
}

// listAnimals issues GET /animals with a bearer token.
func (s *Source) listAnimals(ctx context.Context, token string, params url.Values) (*animalsResponse, error) {
	const op = "list animals"

	if err := s.wait(ctx, op); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.animalsURL()+"?"+params.Encode(), nil)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Op: op, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := s.cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Op: op, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, &Error{Kind: KindAuth, Op: op, StatusCode: resp.StatusCode, Err: readErrorBody(resp.Body)}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &Error{Kind: KindStatus, Op: op, StatusCode: resp.StatusCode, Err: readErrorBody(resp.Body)}
	}

	var payload animalsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &Error{Kind: KindDecode, Op: op, Err: err}
	}
	return &payload, nil
}

// readErrorBody keeps the start of an error response for diagnostics.
func readErrorBody(r io.Reader) error {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(body) == 0 {
		return nil
	}
	return fmt.Errorf("response: %s", body)
}
