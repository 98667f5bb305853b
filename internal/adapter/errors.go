package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

// APIError is the decoded JSON error body of a rejected request.
type APIError struct {
	StatusCode int
	Code       string
	Field      string
	Message    string
}

func (e *APIError) Error() string {
	switch {
	case e.Code == "":
		return fmt.Sprintf("http %d", e.StatusCode)
	case e.Field != "":
		return fmt.Sprintf("%s: %s %s", e.Code, e.Field, e.Message)
	default:
		return e.Code
	}
}
