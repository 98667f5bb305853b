// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a registered account.
// PasswordHash is a bcrypt digest and must never leave the server.
type User struct {
	// UserID is the server-assigned identifier of the user.
	UserID int64 `json:"id"`

	// Username is the unique login name; it is also the token subject.
	Username string `json:"username"`

	// Password carries the plain-text password of an inbound signup/login
	// request only. It is never persisted nor serialised back.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored in the users table.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
