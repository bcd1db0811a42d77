package entity

import "errors"

var (
	// ErrValidation marks requests rejected before any write.
	ErrValidation = errors.New("validation failed")

	// ErrQuotaExceeded is a soft limit; it clears once the quota window rolls over.
	ErrQuotaExceeded = errors.New("daily post limit reached")

	// ErrNotFound is returned by read-style operations on missing ids.
	// Delete-style operations treat missing rows as success instead.
	ErrNotFound = errors.New("not found")

	// ErrStoreUnavailable wraps transient storage failures; safe to retry.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrUpstreamUnavailable wraps failures of external catalog collaborators.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
