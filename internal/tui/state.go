// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/elastic/txcat/internal/chart"
	"github.com/elastic/txcat/internal/transactions"
)

// UIState holds general UI state shared across views.
type UIState struct {
	Mode          viewMode      // Current view mode
	ViewStack     []ViewContext // Navigation history for back navigation
	Err           error         // Current error (if any)
	Width         int           // Terminal width
	Height        int           // Terminal height
	StatusMessage string        // Temporary status message
	StatusTime    time.Time     // When status was set
	LastRefresh   time.Time     // Last page received
}

// ListState holds the accumulated transaction list and its selection.
type ListState struct {
	Controller *transactions.Controller     // Session, cursor and rows
	Selected   int                          // Selected row index
	Trigger    transactions.BoundaryTrigger // Infinite scroll edge trigger
}

// RangeState holds the date range editor.
type RangeState struct {
	Start textinput.Model
	End   textinput.Model
	Focus rangeField
}

// ChartState holds the status-code panel.
type ChartState struct {
	Buckets   []chart.Bucket   // Latest aggregate for the current session
	Projector *chart.Projector // Memoized projection of Buckets
	Loading   bool
	Service   string // Optional service filter
}

// DetailState holds the trace detail view.
type DetailState struct {
	TraceID string
	Trace   *transactions.Trace
	Loading bool
}

// UIComponents holds UI component instances.
type UIComponents struct {
	Viewport      viewport.Model // Detail viewport
	ErrorViewport viewport.Model // Error modal viewport
	HelpViewport  viewport.Model // Help overlay viewport
}
