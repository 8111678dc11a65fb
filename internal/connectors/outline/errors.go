package outline

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/custodia-labs/outline-cli/internal/core/domain"
)

// TransportError indicates the request never produced an HTTP response
// after exhausting the retry budget.
type TransportError struct {
	Endpoint string
	Attempts int
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("outline: %s failed after %d attempts: %v", e.Endpoint, e.Attempts, e.Err)
}

// Unwrap returns the last underlying network error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// RateLimitError indicates the retry budget was exhausted on HTTP 429
// responses.
type RateLimitError struct {
	Endpoint   string
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("outline: %s rate limit exceeded", e.Endpoint)
}

// Is allows matching against domain.ErrRateLimited.
func (e *RateLimitError) Is(target error) bool {
	return target == domain.ErrRateLimited
}

// StatusError is a non-2xx, non-429 HTTP response. Never retried.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("outline: %s returned %d: %s", e.Endpoint, e.StatusCode, msg)
}

// APIError is an application-level failure: HTTP 2xx with ok=false.
// Never retried.
type APIError struct {
	Endpoint string
	Message  string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "unknown API error"
	}
	return fmt.Sprintf("outline: API error: %s", msg)
}

// IsRateLimited reports whether the error is a rate-limit failure.
func IsRateLimited(err error) bool {
	var rle *RateLimitError
	return errors.As(err, &rle) || errors.Is(err, domain.ErrRateLimited)
}

// IsUnauthorized reports whether the error is an HTTP 401 response.
func IsUnauthorized(err error) bool {
	var serr *StatusError
	return errors.As(err, &serr) && serr.StatusCode == http.StatusUnauthorized
}

// IsNotFound reports whether the error is an HTTP 404 response.
func IsNotFound(err error) bool {
	var serr *StatusError
	return errors.As(err, &serr) && serr.StatusCode == http.StatusNotFound
}
