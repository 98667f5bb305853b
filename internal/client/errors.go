package client

import (
	"errors"

	"github.com/MKhiriev/go-feed/internal/adapter"
	"github.com/MKhiriev/go-feed/internal/app"
)

var (
	// ErrUsage is returned for an unknown subcommand or wrong arguments.
	ErrUsage = errors.New("usage error")

	// ErrNotLoggedIn is returned by commands needing a token when none is
	// stored.
	ErrNotLoggedIn = errors.New("not logged in, run login first")
)

// Describe renders err for a terminal user. API errors are shown with the
// wording of their stable code.
func Describe(err error) string {
	var apiErr *adapter.APIError
	if !errors.As(err, &apiErr) || apiErr.Code == "" {
		return err.Error()
	}

	msg := app.Message(apiErr.Code)
	if apiErr.Field != "" {
		msg += ": " + apiErr.Field + " " + apiErr.Message
	}
	return msg
}
