// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains application-level constants shared by the go-feed
// server handlers and the CLI client.
//
// Code* constants are the stable values of the "error" field of every JSON
// error body. Msg* constants are their human-readable wording, printed by the
// client. Keeping both in one place keeps the wire contract and its wording
// in sync.
package app

// Stable error codes of the HTTP API.
const (
	CodeUnauthorized       = "unauthorized"
	CodeForbidden          = "forbidden"
	CodeNotFound           = "not_found"
	CodeInvalidRequest     = "invalid_request"
	CodeValidation         = "validation_failed"
	CodeInvalidCursor      = "invalid_cursor"
	CodeInvalidCredentials = "invalid_credentials"
	CodeUsernameTaken      = "username_taken"
	CodeNotReady           = "not_ready"
	CodeInternal           = "internal_error"
)

const (
	// MsgUnauthorized is shown when the request carried no valid token, or
	// the token's user no longer exists.
	MsgUnauthorized = "not logged in or session expired, run login"

	// MsgAccessDenied is shown when the caller tries to read another
	// user's posts.
	MsgAccessDenied = "access denied"

	// MsgNotFound is shown for unknown paths or methods.
	MsgNotFound = "not found"

	// MsgInvalidDataProvided is shown when the request body cannot be
	// decoded or a path parameter is malformed.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgValidationFailed is shown when a single field fails validation.
	// The field name and reason follow it.
	MsgValidationFailed = "validation failed"

	// MsgInvalidCursor is shown when a pagination cursor is corrupted.
	MsgInvalidCursor = "invalid cursor, start again from the first page"

	// MsgInvalidLoginPassword is shown when the username/password pair does
	// not match any user.
	MsgInvalidLoginPassword = "invalid username/password"

	// MsgUsernameTaken is shown when signup picks a username already in use.
	MsgUsernameTaken = "username already taken"

	// MsgServerNotReady is shown when the server cannot reach its storage.
	MsgServerNotReady = "server is not ready, try again later"

	// MsgInternalServerError is shown for any unexpected server failure.
	MsgInternalServerError = "internal server error"
)

var messages = map[string]string{
	CodeUnauthorized:       MsgUnauthorized,
	CodeForbidden:          MsgAccessDenied,
	CodeNotFound:           MsgNotFound,
	CodeInvalidRequest:     MsgInvalidDataProvided,
	CodeValidation:         MsgValidationFailed,
	CodeInvalidCursor:      MsgInvalidCursor,
	CodeInvalidCredentials: MsgInvalidLoginPassword,
	CodeUsernameTaken:      MsgUsernameTaken,
	CodeNotReady:           MsgServerNotReady,
	CodeInternal:           MsgInternalServerError,
}

// Message returns the wording of an API error code. Unknown codes are
// returned unchanged.
func Message(code string) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return code
}
