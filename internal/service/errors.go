package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRecord is returned when a submitted body is not a JSON object.
	ErrInvalidRecord = errors.New("invalid record")
)

// ValidationError reports a rejected field of a submitted record.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError reports whether err is or wraps a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
