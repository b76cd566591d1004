// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package transactions

import (
	"strings"
	"time"
)

// Input layouts accepted for range bounds, tried in order.
const (
	InputLayout     = "2006-01-02 15:04:05"
	InputDateLayout = "2006-01-02"
)

// Range is an inclusive start/end selection. Either bound may be nil; an
// entirely empty range means no time filter.
type Range struct {
	Start *time.Time
	End   *time.Time
}

// NewRange returns a range with both bounds set.
func NewRange(start, end time.Time) Range {
	return Range{Start: &start, End: &end}
}

// IsZero reports whether neither bound is set.
func (r Range) IsZero() bool {
	return r.Start == nil && r.End == nil
}

// Validate checks a range before it is committed. Both bounds are required
// and the start must not be after the end; equal bounds are accepted.
func (r Range) Validate() error {
	switch {
	case r.Start == nil && r.End == nil:
		return &ValidationError{Reason: "select both a start and an end date"}
	case r.Start == nil:
		return &ValidationError{Field: "start", Reason: "missing"}
	case r.End == nil:
		return &ValidationError{Field: "end", Reason: "missing"}
	}
	if r.Start.After(*r.End) {
		return &RangeOrderError{Start: *r.Start, End: *r.End}
	}
	return nil
}

// String renders the range for status bars and logs.
func (r Range) String() string {
	if r.IsZero() {
		return "all"
	}
	return formatBound(r.Start) + " → " + formatBound(r.End)
}

func formatBound(t *time.Time) string {
	if t == nil {
		return "…"
	}
	return t.In(time.Local).Format(InputLayout)
}

// ParseRange parses user input for both bounds. Empty input leaves the bound
// unset so that Validate can report it; unreadable input is a ValidationError.
func ParseRange(start, end string, loc *time.Location) (Range, error) {
	var r Range
	s, err := parseBound("start", start, loc)
	if err != nil {
		return Range{}, err
	}
	e, err := parseBound("end", end, loc)
	if err != nil {
		return Range{}, err
	}
	r.Start, r.End = s, e
	return r, nil
}

func parseBound(field, value string, loc *time.Location) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range []string{InputLayout, InputDateLayout, time.RFC3339} {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return &t, nil
		}
	}
	return nil, &ValidationError{Field: field, Reason: "expected YYYY-MM-DD [HH:MM:SS], got " + value}
}
