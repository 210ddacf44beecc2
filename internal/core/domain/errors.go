package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	// A favorite without an ID or name is rejected with it before any
	// storage attempt.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrStorage marks failures of the local store (I/O, corruption,
	// constraint or schema errors). Store errors always wrap it.
	ErrStorage = errors.New("storage failure")

	// ErrSourceUnavailable indicates the remote listing service could not
	// serve a request. It never leaves the source adapter.
	ErrSourceUnavailable = errors.New("listing source unavailable")
)
