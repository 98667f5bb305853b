// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the body of POST /auth/signup and POST /auth/login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreatePostRequest is the body of POST /posts.
type CreatePostRequest struct {
	Content string `json:"content"`
}

// TimelineRequest holds the parsed query parameters of a timeline read.
// Limit is zero when the parameter was absent or not an integer.
type TimelineRequest struct {
	Limit  int
	Cursor string
}
