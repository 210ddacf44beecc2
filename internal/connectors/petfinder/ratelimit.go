package petfinder

import (
	"context"

	"golang.org/x/time/rate"
)

// throttleBurst allows a token exchange and a retried listing back to back.
const throttleBurst = 3

// newLimiter creates the proactive throttle shared by every call of a source.
func newLimiter(rps float64) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(rps), throttleBurst)
}

// wait blocks until the limiter admits one request.
func (s *Source) wait(ctx context.Context, op string) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return &Error{Kind: KindRateLimit, Op: op, Err: err}
	}
	return nil
}
