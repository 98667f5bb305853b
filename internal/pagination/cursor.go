// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pagination

import (
	"encoding/base64"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-feed/models"
)

const (
	cursorSeparator   = ":"
	fractionSeparator = "."
	fractionDigits    = 9
)

var cursorEncoding = base64.RawURLEncoding

// UnixNano is only defined between these instants (years 1678 and 2262).
var (
	minNanoTime = time.Unix(0, math.MinInt64)
	maxNanoTime = time.Unix(0, math.MaxInt64)
)

func inNanoRange(t time.Time) bool {
	return !t.Before(minNanoTime) && !t.After(maxNanoTime)
}

// EncodeCursor returns the opaque cursor for the position (createdAt, id).
//
// The payload is "<unix nanoseconds>:<id>" in base64url without padding, so
// the timestamp survives to the nanosecond and equal inputs always produce
// equal output regardless of the time's location. Times that do not fit in
// int64 nanoseconds are written as "<unix seconds>.<9-digit nanos>:<id>".
func EncodeCursor(createdAt time.Time, id int64) string {
	raw := timestampPart(createdAt) + cursorSeparator + strconv.FormatInt(id, 10)
	return cursorEncoding.EncodeToString([]byte(raw))
}

func timestampPart(t time.Time) string {
	if inNanoRange(t) {
		return strconv.FormatInt(t.UnixNano(), 10)
	}
	return strconv.FormatInt(t.Unix(), 10) + fractionSeparator + fmt.Sprintf("%0*d", fractionDigits, t.Nanosecond())
}

// EncodePosition is a convenience wrapper around [EncodeCursor].
func EncodePosition(c models.Cursor) string {
	return EncodeCursor(c.CreatedAt, c.ID)
}

// DecodeCursor parses a cursor produced by [EncodeCursor].
//
// An empty (or whitespace-only) string means "first page" and yields a nil
// cursor without error. Anything else that does not decode to a valid
// position yields [ErrInvalidCursor]; a corrupt cursor is never mapped to an
// arbitrary position. The decoded timestamp is in UTC.
func DecodeCursor(s string) (*models.Cursor, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	raw, err := cursorEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCursor, err)
	}

	tsPart, idPart, found := strings.Cut(string(raw), cursorSeparator)
	if !found {
		return nil, fmt.Errorf("%w: missing separator", ErrInvalidCursor)
	}

	createdAt, err := parseTimestamp(tsPart)
	if err != nil {
		return nil, err
	}

	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad id: %w", ErrInvalidCursor, err)
	}
	if id <= 0 {
		return nil, fmt.Errorf("%w: non-positive id", ErrInvalidCursor)
	}

	// reject non-canonical spellings such as "+5" or "007"
	if strconv.FormatInt(id, 10) != idPart {
		return nil, fmt.Errorf("%w: non-canonical encoding", ErrInvalidCursor)
	}

	return &models.Cursor{CreatedAt: createdAt, ID: id}, nil
}

// parseTimestamp accepts exactly what timestampPart writes.
func parseTimestamp(s string) (time.Time, error) {
	secPart, fracPart, fractional := strings.Cut(s, fractionSeparator)
	if !fractional {
		nanos, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: bad timestamp: %w", ErrInvalidCursor, err)
		}
		if strconv.FormatInt(nanos, 10) != s {
			return time.Time{}, fmt.Errorf("%w: non-canonical encoding", ErrInvalidCursor)
		}
		return time.Unix(0, nanos).UTC(), nil
	}

	sec, err := strconv.ParseInt(secPart, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad timestamp: %w", ErrInvalidCursor, err)
	}
	if len(fracPart) != fractionDigits || strings.Trim(fracPart, "0123456789") != "" {
		return time.Time{}, fmt.Errorf("%w: bad timestamp fraction", ErrInvalidCursor)
	}
	nsec, err := strconv.ParseInt(fracPart, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad timestamp: %w", ErrInvalidCursor, err)
	}

	t := time.Unix(sec, nsec).UTC()
	if strconv.FormatInt(sec, 10) != secPart || inNanoRange(t) {
		return time.Time{}, fmt.Errorf("%w: non-canonical encoding", ErrInvalidCursor)
	}
	return t, nil
}
