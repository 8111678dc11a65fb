package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrUnsupportedPageType indicates a page type other than document
	// or collection was requested.
	ErrUnsupportedPageType = errors.New("unsupported page type")

	// ErrCredentialsMissing indicates required credentials are absent
	// or malformed. Raised before any network call.
	ErrCredentialsMissing = errors.New("credentials missing")

	// ErrNotAuthenticated indicates no credentials are configured yet.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrRateLimited indicates the API rate limit retry budget was
	// exhausted.
	ErrRateLimited = errors.New("rate limited")

	// ErrAuthInvalid indicates the API rejected the configured key.
	ErrAuthInvalid = errors.New("authentication invalid")

	// ErrNotFound indicates a requested entity does not exist upstream.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates the provided input is invalid.
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError is a user-facing credential validation failure.
// Every validation failure category maps to a distinct message; the
// underlying cause is preserved for diagnostics.
type ValidationError struct {
	// Message is shown to the user.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// IsValidationError reports whether err is a credential validation failure.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
