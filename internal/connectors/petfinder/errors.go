package petfinder

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/custodia-labs/pawprint/internal/core/domain"
)

// Kind classifies a live-path failure.
type Kind int

const (
	// KindNetwork covers transport failures and timeouts.
	KindNetwork Kind = iota
	// KindAuth covers token exchange failures and rejected tokens.
	KindAuth
	// KindStatus covers unexpected non-2xx listing responses.
	KindStatus
	// KindDecode covers malformed response bodies.
	KindDecode
	// KindRateLimit covers local throttling failures.
	KindRateLimit
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindAuth:
		return "auth"
	case KindStatus:
		return "status"
	case KindDecode:
		return "decode"
	case KindRateLimit:
		return "rate limit"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a failure on the live path. It never escapes Source.Search.
type Error struct {
	Kind Kind
	Op   string

	// StatusCode is the HTTP status for KindStatus and rejected tokens.
	StatusCode int

	Err error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("petfinder: %s: %s", e.Op, e.Kind)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (HTTP %d)", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports every live-path error as domain.ErrSourceUnavailable.
func (e *Error) Is(target error) bool {
	return target == domain.ErrSourceUnavailable
}

// IsUnauthorized reports whether err is a listing response rejected with 401.
func IsUnauthorized(err error) bool {
	var pfErr *Error
	if errors.As(err, &pfErr) {
		return pfErr.Kind == KindAuth && pfErr.StatusCode == http.StatusUnauthorized
	}
	return false
}

// KindOf returns the kind of a live-path error and whether err is one.
func KindOf(err error) (Kind, bool) {
	var pfErr *Error
	if errors.As(err, &pfErr) {
		return pfErr.Kind, true
	}
	return 0, false
}
