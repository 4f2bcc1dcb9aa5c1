package httperr

import (
	"fmt"
	"strings"
)

// FieldError is a single violated input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func Field(field, message string) FieldError {
	return FieldError{Field: field, Message: message}
}

// ValidationError reports every violated field of a request. It is
// always raised before any persistence attempt.
type ValidationError struct {
	Fields []FieldError
}

func (e ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return "validation failed: " + strings.Join(names, ", ")
}

func ErrValidation(fields ...FieldError) error {
	return ValidationError{Fields: fields}
}

// NotFoundError means a referenced entity does not exist.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func ErrNotFound(resource string) error {
	return NotFoundError{Resource: resource}
}

// AuthorizationError means the caller lacks the capability for the
// target record.
type AuthorizationError struct {
	Reason string
}

func (e AuthorizationError) Error() string {
	return e.Reason
}

func ErrForbidden(reason string) error {
	return AuthorizationError{Reason: reason}
}
