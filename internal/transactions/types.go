// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

// Package transactions holds the transaction list model and the paging state
// that accumulates pages fetched from a trace backend.
//
// The package has no knowledge of the TUI or of any concrete backend:
//   - types.go: list items, pages, cursors, queries
//   - range.go: date range selection and validation
//   - state.go: pure reducer (reset, merge)
//   - controller.go: session-scoped owner of the state, driven by events
//   - scroll.go: edge-triggered infinite scroll boundary
//   - drain.go: cursor following for non-interactive callers
//   - format.go: row formatting and navigation targets
package transactions

import (
	"context"
	"time"
)

// Item is one row of the transaction list. Items are never mutated after
// they are fetched.
type Item struct {
	TraceID       string    `json:"traceId"`
	EndPoint      string    `json:"endPoint"`
	ServiceName   string    `json:"serviceName"`
	Duration      float64   `json:"duration"` // milliseconds
	StartDateTime time.Time `json:"startDateTime"`
	StatusCode    int       `json:"statusCode"`
	Abnormal      bool      `json:"abnormal"`
}

// Cursor is the opaque afterKey returned by the backend. The zero value means
// the cursor is absent, which signals that there is nothing left to fetch.
type Cursor string

// NoCursor is the absent cursor.
const NoCursor Cursor = ""

// Absent reports whether the cursor is missing.
func (c Cursor) Absent() bool {
	return c == NoCursor
}

// Page is one response of the trace list query.
type Page struct {
	Results    []Item `json:"results"`
	AfterKey   Cursor `json:"afterKey,omitempty"`
	TotalCount int64  `json:"totalCount"`
}

// Query is the request sent to the trace list query.
type Query struct {
	Range    Range
	AfterKey Cursor // NoCursor requests the first page
	Size     int
}

// Fetcher is implemented by every backend that can serve transaction pages.
type Fetcher interface {
	ListTransactions(ctx context.Context, q Query) (*Page, error)
}
