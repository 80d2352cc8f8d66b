package domain

import (
	"errors"
	"strings"
)

// Sentinel errors shared by repositories, services and transports.
// Transports map them to status codes; nothing else inspects messages.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrNotImplemented marks operations that are presented but permanently disabled.
	ErrNotImplemented = errors.New("not implemented")
)

// FieldError is one rejected input field. Message is a stable machine key
// ("required", "too long") that transports translate for display.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects field errors and matches ErrValidation.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Lookup returns the message of the first error reported for field.
func (e *ValidationError) Lookup(field string) (string, bool) {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return fe.Message, true
		}
	}
	return "", false
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// Validation returns nil for an empty list and a *ValidationError otherwise.
func Validation(errs []FieldError) error {
	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Errors: errs}
}
