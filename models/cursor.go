// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Cursor marks the last item a client has seen in the timeline order
// (created_at DESC, id DESC). Because ID is unique the pair identifies
// exactly one position.
type Cursor struct {
	CreatedAt time.Time
	ID        int64
}

// Admits reports whether p lies strictly after the cursor position, i.e.
// p.CreatedAt < c.CreatedAt or (p.CreatedAt == c.CreatedAt and p.ID < c.ID).
func (c Cursor) Admits(p Post) bool {
	if p.CreatedAt.Equal(c.CreatedAt) {
		return p.ID < c.ID
	}
	return p.CreatedAt.Before(c.CreatedAt)
}

// Page is one batch of the timeline. NextCursor is nil on the last page.
type Page struct {
	Items      []Post
	NextCursor *Cursor
}

// TimelineQuery is the storage-level request for one timeline batch.
type TimelineQuery struct {
	// OwnerIDs restricts the batch to posts of these users.
	OwnerIDs []int64

	// Limit is the already normalised maximum batch size.
	Limit int

	// After is the keyset position to continue from; nil means first page.
	After *Cursor
}
