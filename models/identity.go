// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Identity is the caller established by a verified token. It is bound into
// the request context by the authentication middleware and never mutated.
type Identity struct {
	Subject string `json:"subject"`
	UserID  int64  `json:"user_id"`
}
