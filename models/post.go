// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Post is a single feed item. IDs are assigned by storage and strictly
// increase at insert time, so (CreatedAt, ID) totally orders all posts.
type Post struct {
	ID        int64     `json:"id"`
	OwnerID   int64     `json:"owner_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

// Before reports whether p precedes other in the timeline order
// (created_at DESC, id DESC).
func (p Post) Before(other Post) bool {
	if p.CreatedAt.Equal(other.CreatedAt) {
		return p.ID > other.ID
	}
	return p.CreatedAt.After(other.CreatedAt)
}

// Position returns the keyset position of p.
func (p Post) Position() Cursor {
	return Cursor{CreatedAt: p.CreatedAt, ID: p.ID}
}
