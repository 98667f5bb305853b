// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the subcommand in args and returns when it is done.
	Run(ctx context.Context, args []string) error
}

// TokenStore persists the bearer token between client runs.
type TokenStore interface {
	// Load returns the stored token, or "" when none was saved.
	Load() (string, error)
	Save(token string) error
	Clear() error
}
