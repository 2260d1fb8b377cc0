package riot

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors classifying upstream outcomes. Callers branch on these
// with errors.Is rather than inspecting status codes.
var (
	// ErrNotFound is a definitive 404: the resource does not exist and
	// retrying will not change that.
	ErrNotFound = errors.New("riot: not found")

	// ErrRejected is a non-2xx, non-404 response (429 rate limited, 401/403
	// bad token, ...). A retry with backoff may succeed.
	ErrRejected = errors.New("riot: request rejected")

	// ErrUnavailable is a transport-level failure: timeout, connection
	// refused, 5xx, or a body that could not be decoded.
	ErrUnavailable = errors.New("riot: upstream unavailable")
)

// StatusError carries the HTTP status of a failed request. It unwraps to
// the matching sentinel so errors.Is works against the taxonomy above.
type StatusError struct {
	Code       int
	RetryAfter time.Duration
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("riot api status %d", e.Code)
}

func (e *StatusError) Unwrap() error {
	switch {
	case e.Code == 404:
		return ErrNotFound
	case e.Code >= 500:
		return ErrUnavailable
	default:
		return ErrRejected
	}
}

// Retryable reports whether another attempt is worth making.
func (e *StatusError) Retryable() bool {
	return e.Code == 429 || e.Code >= 500
}
