// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/go-feed/internal/app"
)

// Stable values of the "error" field of JSON error bodies.
const (
	codeUnauthorized       = app.CodeUnauthorized
	codeForbidden          = app.CodeForbidden
	codeNotFound           = app.CodeNotFound
	codeInvalidRequest     = app.CodeInvalidRequest
	codeValidation         = app.CodeValidation
	codeInvalidCursor      = app.CodeInvalidCursor
	codeInvalidCredentials = app.CodeInvalidCredentials
	codeUsernameTaken      = app.CodeUsernameTaken
	codeNotReady           = app.CodeNotReady
	codeInternal           = app.CodeInternal
)

var (
	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidUserID is returned when the {userID} path parameter is not a
	// positive integer.
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrNoIdentity is returned by handlers of protected routes reached
	// without an identity in the context.
	ErrNoIdentity = errors.New("no identity in request context")
)
