// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input rules of the feed: username and
// password shape on signup, and post content length.
//
// A Validator checks a value, optionally restricted to named fields, and
// reports the first failure as a *FieldError naming the offending JSON field
// so the HTTP layer can answer 400 with that field.
package validators

import "context"

// Validator validates request values before they reach storage.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	// Failures are reported as *FieldError.
	Validate(context.Context, any, ...string) error
}
