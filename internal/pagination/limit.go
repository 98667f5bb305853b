// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pagination

import "github.com/MKhiriev/go-feed/internal/config"

// Limits is the configured page size range.
type Limits struct {
	Default int
	Min     int
	Max     int
}

// DefaultLimits is used when no timeline configuration is provided.
var DefaultLimits = Limits{Default: 20, Min: 1, Max: 50}

// NewLimits builds [Limits] from configuration, falling back to
// [DefaultLimits] for zero values.
func NewLimits(cfg config.Timeline) Limits {
	l := Limits{Default: cfg.DefaultLimit, Min: cfg.MinLimit, Max: cfg.MaxLimit}
	if l.Default == 0 {
		l.Default = DefaultLimits.Default
	}
	if l.Min == 0 {
		l.Min = DefaultLimits.Min
	}
	if l.Max == 0 {
		l.Max = DefaultLimits.Max
	}
	return l
}

// Normalize returns requested when it lies within [Min, Max] and Default
// otherwise. Absent input is passed as zero. Out-of-range values are never
// rejected.
func (l Limits) Normalize(requested int) int {
	if requested < l.Min || requested > l.Max {
		return l.Default
	}
	return requested
}
