package esignatures

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches any *ValidationError with errors.Is.
	ErrValidation = errors.New("esignatures: validation failed")
	// ErrAPI matches any *APIError with errors.Is.
	ErrAPI = errors.New("esignatures: api request failed")
	// ErrMissingData is returned when a 200 response has no "data" field.
	ErrMissingData = errors.New("esignatures: response has no data field")
)

// ValidationError is returned for malformed input, before any request is sent.
type ValidationError struct {
	Field   string
	Message string
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "esignatures: " + e.Message
	}
	return fmt.Sprintf("esignatures: invalid %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// APIError is returned when the API answers with anything other than 200 OK.
type APIError struct {
	StatusCode int
	Body       string
	Method     string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("esignatures: %s %s failed: status=%d, body=%s",
		e.Method, e.Endpoint, e.StatusCode, truncateString(e.Body, maxBodyLogLength))
}

func (e *APIError) Is(target error) bool {
	return target == ErrAPI
}

// redactedError hides the secret in the message of an error that embeds it.
type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }

func (e *redactedError) Unwrap() error { return e.err }
