package repositories

import "errors"

// Sentinel errors shared by all repository implementations. Services match on
// these with errors.Is instead of inspecting driver errors.
var (
	// ErrNotFound is returned when no row matches the requested scope. An
	// ownership mismatch is reported identically to a missing row.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateKey is returned when an insert violates a unique constraint.
	ErrDuplicateKey = errors.New("duplicate key")
)
