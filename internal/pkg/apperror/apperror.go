// Package apperror defines the error kinds shared by every domain. Domain
// packages declare their own sentinels wrapping one of these kinds, so the
// HTTP layer can map them with errors.Is without knowing each domain.
package apperror

import "errors"

var (
	// ErrNotFound means a referenced id does not resolve.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState means the action is not allowed from the record's
	// current state. Callers must re-fetch before retrying.
	ErrInvalidState = errors.New("invalid state")

	// ErrSourceUnavailable means a data source could not be read. The catalog
	// recovers from it locally and never surfaces it to callers.
	ErrSourceUnavailable = errors.New("source unavailable")
)

// IsNotFound reports whether err is of the not-found kind.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidState reports whether err is of the invalid-state kind.
func IsInvalidState(err error) bool {
	return errors.Is(err, ErrInvalidState)
}
