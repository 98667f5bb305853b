// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the go-feed server.
//
// The primary abstraction is [ServerAdapter], which decouples the CLI client
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401). The
// decoded error body is available through [errors.As] with [*APIError].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-feed/models"
)

// ServerAdapter defines transport-agnostic communication with the go-feed
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Signup creates an account. It does not log in.
	Signup(ctx context.Context, creds models.Credentials) (models.SignupResponse, error)

	// Login exchanges credentials for a token and stores it via SetToken.
	Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error)

	// Me returns the identity bound to the stored token.
	Me(ctx context.Context) (models.Identity, error)

	// CreatePost publishes a post as the token's user.
	CreatePost(ctx context.Context, req models.CreatePostRequest) (models.PostResponse, error)

	// Timeline reads one page of the caller's timeline.
	Timeline(ctx context.Context, req models.TimelineRequest) (models.TimelineResponse, error)

	// UserPosts reads one page of the posts of userID.
	UserPosts(ctx context.Context, userID int64, req models.TimelineRequest) (models.TimelineResponse, error)

	// Health calls the liveness endpoint.
	Health(ctx context.Context) (models.HealthResponse, error)
}
