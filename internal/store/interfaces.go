// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists users and posts. Three backends implement the same
// repositories: PostgreSQL (pgx), SQLite (mattn/go-sqlite3) and an in-process
// memory store. The backend is selected by the scheme of the configured DSN.
package store

import (
	"context"

	"github.com/MKhiriev/go-feed/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository stores user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID and CreatedAt set.
	// Returns ErrUsernameAlreadyExists when the username is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns ErrUserNotFound if no such user exists.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID returns ErrUserNotFound if no such user exists.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// PostRepository stores feed items.
type PostRepository interface {
	// CreatePost inserts post and returns it with ID set.
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)

	// ListPosts returns at most query.Limit posts owned by any of
	// query.OwnerIDs, ordered by (created_at DESC, id DESC) and strictly
	// after query.After when it is set.
	ListPosts(ctx context.Context, query models.TimelineQuery) ([]models.Post, error)
}

// HealthChecker reports whether the storage backend is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
