package contract

import "errors"

var (
	// ErrValidation marks a missing or malformed required parameter.
	// Nothing executes partially when it is returned.
	ErrValidation = errors.New("validation error")

	// ErrNotFound marks a reference that resolves to nothing.
	ErrNotFound = errors.New("not found")

	// ErrProviderUnavailable marks an unauthenticated external provider.
	// Providers are expected to degrade to empty results instead of
	// returning this; it exists for callers that need the distinction.
	ErrProviderUnavailable = errors.New("provider unavailable")
)

// ErrorKind is the machine-readable failure class carried on a Result.
type ErrorKind string

const (
	KindValidation          ErrorKind = "validation_error"
	KindNotFound            ErrorKind = "not_found_error"
	KindProviderUnavailable ErrorKind = "provider_unavailable"
	KindInternal            ErrorKind = "internal_error"
)

// ClassifyError maps an error chain onto an ErrorKind. Anything that is
// not an expected condition counts as internal.
func ClassifyError(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrProviderUnavailable):
		return KindProviderUnavailable
	default:
		return KindInternal
	}
}
