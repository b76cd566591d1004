// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package transactions

import "slices"

// State is the accumulated transaction list for one filter session.
//
// Rows keep the order the backend returned them in and are never sorted or
// deduplicated: an overlapping page produces duplicate rows.
type State struct {
	Rows       []Item
	Cursor     Cursor
	TotalCount int64
}

// Reset returns the empty state a new session starts from.
func Reset() State {
	return State{}
}

// Merge returns the state after page p has been received. The receiver is
// not modified; the returned rows never share a backing array with it.
func (s State) Merge(p Page) State {
	return State{
		Rows:       slices.Concat(s.Rows, p.Results),
		Cursor:     p.AfterKey,
		TotalCount: p.TotalCount,
	}
}

// Len returns the number of accumulated rows.
func (s State) Len() int {
	return len(s.Rows)
}

// HasMore reports whether another page may be requested. An absent cursor
// wins over the total count.
func (s State) HasMore() bool {
	return int64(len(s.Rows)) < s.TotalCount && !s.Cursor.Absent()
}

// EndOfData reports whether the list should show its end marker.
func (s State) EndOfData() bool {
	return !s.HasMore()
}
