// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PostResponse is the wire shape of a single feed item.
type PostResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// TimelineResponse is the wire shape of one timeline page. NextCursor is
// serialised as null on the last page.
type TimelineResponse struct {
	Items      []PostResponse `json:"items"`
	NextCursor *string        `json:"nextCursor"`
}

// SignupResponse is returned by POST /auth/signup.
type SignupResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// LoginResponse is returned by POST /auth/login.
type LoginResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"tokenType"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// HealthResponse is returned by the health endpoints.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// ErrorResponse is the body of every rejected request. Error is a stable
// machine-readable code; Field is set for field-level validation failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message,omitempty"`
}
