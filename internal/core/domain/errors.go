package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownSource indicates a per-source search named a source that is
	// not registered with the aggregator. This is a caller programming error
	// and fails the call, unlike a transient availability problem.
	ErrUnknownSource = errors.New("unknown source")

	// ErrSourceUnavailable indicates a source cannot be reached right now.
	// Availability is rechecked on every search; unavailable sources are
	// skipped rather than failing the overall query.
	ErrSourceUnavailable = errors.New("source unavailable")
)
