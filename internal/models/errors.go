package models

import "errors"

// ValidationError is a field-level input problem detected before any
// provider call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrEmptyCode       = &ValidationError{Field: "code", Message: "Code is required"}
	ErrCodeTooLong     = &ValidationError{Field: "code", Message: "Code must be less than 10,000 characters"}
	ErrMissingLanguage = &ValidationError{Field: "language", Message: "Language is required"}
)

var (
	// ErrServiceUnavailable wraps transport, rate limit and API failures of the provider.
	ErrServiceUnavailable = errors.New("explanation service unavailable")
	// ErrMalformedResponse means the provider answered but the content is unusable.
	ErrMalformedResponse = errors.New("malformed provider response")
)
