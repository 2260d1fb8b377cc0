package service

import (
	"errors"
	"fmt"

	"league-tracker/internal/riot"
)

// Caller-visible error set. Handlers map these onto HTTP statuses.
var (
	// ErrInvalidInput rejects empty or malformed identity fields before
	// any network call is made.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPlayerNotFound means the identity does not resolve to an
	// account, or a match's participant list is missing the expected
	// player. Retrying will not help.
	ErrPlayerNotFound = errors.New("player not found")

	// ErrUpstreamUnavailable is a transport-level failure upstream.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrUpstreamRejected is a non-2xx, non-404 upstream response, e.g.
	// rate limiting or a bad token. Distinct from not-found because a
	// retry with backoff might succeed.
	ErrUpstreamRejected = errors.New("upstream rejected request")
)

// mapUpstreamErr translates transport errors into the service taxonomy.
func mapUpstreamErr(err error) error {
	switch {
	case errors.Is(err, riot.ErrNotFound):
		return fmt.Errorf("%w: %v", ErrPlayerNotFound, err)
	case errors.Is(err, riot.ErrRejected):
		return fmt.Errorf("%w: %v", ErrUpstreamRejected, err)
	default:
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
}
