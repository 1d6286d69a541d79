// internal/apperrors/errors.go
package apperrors

import "fmt"

// ErrEmptyBody signals a request that arrived with no body at all.
type ErrEmptyBody struct{}

func (e *ErrEmptyBody) Error() string {
	return "Request body is required"
}

// ErrBadJSON signals a body that could not be parsed as JSON.
type ErrBadJSON struct {
	Cause error
}

func (e *ErrBadJSON) Error() string {
	return "Invalid JSON format in request body"
}

func (e *ErrBadJSON) Unwrap() error {
	return e.Cause
}

// ErrMissingField signals a required field that is absent or empty.
type ErrMissingField struct {
	Field string
}

func (e *ErrMissingField) Error() string {
	return fmt.Sprintf("Missing required field: %s", e.Field)
}

// Helper constructor
func NewMissingField(field string) error {
	return &ErrMissingField{Field: field}
}
