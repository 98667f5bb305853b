package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUsername = errors.New("username must be 3-32 characters of letters, digits or underscore")
	ErrInvalidPassword = errors.New("password must be 8-72 bytes long")
	ErrEmptyContent    = errors.New("content must not be blank")
	ErrContentTooLong  = errors.New("content must be at most 280 characters")
)

// FieldError is a validation failure of a single named input field.
type FieldError struct {
	Field string
	Err   error
}

// NewFieldError returns a *FieldError for field wrapping err.
func NewFieldError(field string, err error) *FieldError {
	return &FieldError{Field: field, Err: err}
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
