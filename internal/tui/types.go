// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/elastic/txcat/internal/chart"
	"github.com/elastic/txcat/internal/transactions"
)

// viewMode represents different UI views in the TUI
type viewMode int

// ViewContext captures state needed to restore a view when navigating back
type ViewContext struct {
	Mode viewMode
}

const (
	viewList        viewMode = iota // Transaction list with status chart
	viewRangeInput                  // Date range editor over the list
	viewDetail                      // Trace detail for /transactions/<traceId>
	viewErrorModal                  // Blocking error dialog
	viewQuitConfirm                 // Quit confirmation modal
	viewHelp                        // Hotkeys overlay
)

// rangeField identifies the focused range input.
type rangeField int

const (
	rangeStart rangeField = iota
	rangeEnd
)

// Message types for Bubble Tea
type (
	// pageMsg carries the outcome of one list request. The request
	// identifies the session and sequence it was issued for.
	pageMsg struct {
		req  transactions.Request
		page *transactions.Page
		err  error
	}
	// statusCodesMsg carries a status aggregate for the given session.
	statusCodesMsg struct {
		session uint64
		buckets []chart.Bucket
		err     error
	}
	traceMsg struct {
		traceID string
		trace   *transactions.Trace
		err     error
	}
	browserOpenedMsg struct {
		url string
		err error
	}
	errMsg error
)
