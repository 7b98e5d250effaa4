package domain

import (
	"context"
	"errors"
)

// Sentinel errors for domain operations
var (
	// ErrMovieNotFound indicates the catalog has no match for the request
	ErrMovieNotFound = errors.New("movie not found")

	// ErrNetwork indicates the catalog request failed in transport or returned a non-OK status
	ErrNetwork = errors.New("network problem")

	// ErrStorage indicates the watch-list could not be read or written
	ErrStorage = errors.New("watch-list storage failed")

	// ErrInvalidRating indicates a user rating outside 1..10
	ErrInvalidRating = errors.New("rating must be between 1 and 10")
)

// IsCancelled reports whether err is the expected result of a superseded request
func IsCancelled(err error) bool {
	return errors.Is(err, context.Canceled)
}

// UserMessage maps an error to the single message shown in place of results.
// Cancellation is never user-visible and maps to "".
func UserMessage(err error) string {
	switch {
	case err == nil, IsCancelled(err):
		return ""
	case errors.Is(err, ErrMovieNotFound):
		return ErrMovieNotFound.Error()
	case errors.Is(err, ErrStorage):
		return ErrStorage.Error()
	case errors.Is(err, ErrInvalidRating):
		return ErrInvalidRating.Error()
	default:
		return ErrNetwork.Error()
	}
}
