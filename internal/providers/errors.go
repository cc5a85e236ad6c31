package providers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/preston-bernstein/ipl-matches-service/internal/domain/matches"
)

// ErrProviderUnavailable is returned when no upstream is configured.
var ErrProviderUnavailable = errors.New("provider unavailable")

// NetworkError wraps transport failures (DNS, connection refused, timeouts).
type NetworkError struct {
	Provider string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: request failed: %v", e.Provider, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPStatusError captures non-2xx responses from upstream providers.
type HTTPStatusError struct {
	Provider   string
	StatusCode int
	Body       string
	RetryAfter time.Duration
}

func (e *HTTPStatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Provider, e.StatusCode, e.Body)
}

// RateLimited reports whether the upstream asked us to slow down.
func (e *HTTPStatusError) RateLimited() bool {
	return e.StatusCode == 429
}

// DecodeError reports a body that was not valid JSON or did not match the expected shape.
type DecodeError struct {
	Provider string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decode response: %v", e.Provider, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// AsHTTPStatusError attempts to unwrap an error into an HTTPStatusError.
func AsHTTPStatusError(err error) (*HTTPStatusError, bool) {
	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}

// AsDecodeError attempts to unwrap an error into a DecodeError.
func AsDecodeError(err error) (*DecodeError, bool) {
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return decodeErr, true
	}
	return nil, false
}

// AsNetworkError attempts to unwrap an error into a NetworkError.
func AsNetworkError(err error) (*NetworkError, bool) {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr, true
	}
	return nil, false
}

// KindOf classifies a fetch error for the page state and metrics.
// Cancellation wins over the transport wrapper so a client that left is not reported as an outage.
func KindOf(err error) matches.FailureKind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.Canceled):
		return matches.FailureCanceled
	case errors.Is(err, ErrProviderUnavailable):
		return matches.FailureUnavailable
	}
	if _, ok := AsDecodeError(err); ok {
		return matches.FailureDecode
	}
	if _, ok := AsHTTPStatusError(err); ok {
		return matches.FailureHTTPStatus
	}
	return matches.FailureNetwork
}

// IsTimeout reports whether the failure was a deadline rather than a refusal.
func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
