// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pagination

import "errors"

// ErrInvalidCursor is returned by [DecodeCursor] for a non-empty string that
// is not a cursor produced by [EncodeCursor].
var ErrInvalidCursor = errors.New("invalid cursor")
