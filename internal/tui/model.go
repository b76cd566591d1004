// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sirupsen/logrus"

	"github.com/elastic/txcat/internal/chart"
	"github.com/elastic/txcat/internal/config"
	"github.com/elastic/txcat/internal/transactions"
)

// Model is the main TUI model containing all application state.
//
// State is organized into embedded structs:
//   - Core: client, ctx, requests (flat, used everywhere)
//   - UI: mode, dimensions, error and status line
//   - List: paging controller, selection, infinite scroll trigger
//   - Range: date range editor
//   - Chart: status-code aggregate
//   - Detail: trace detail view
//   - Components: viewports
type Model struct {
	// === Core (flat - used everywhere) ===
	client    DataSource         // Data source (interface for testability)
	ctx       context.Context    // Parent context (canceled when app exits)
	requests  *requestManager    // In-flight request management
	tuiConfig config.TUIConfig   // Paging and timeout config
	webURL    string             // Web dashboard base URL for "open in browser"
	source    string             // Data source label shown in the header
	loc       *time.Location     // Zone used to parse range input
	log       logrus.FieldLogger // Diagnostics

	// === Embedded State ===
	UI         UIState
	List       ListState
	Range      RangeState
	Chart      ChartState
	Detail     DetailState
	Components UIComponents
}

// Options holds optional configuration for NewModel.
type Options struct {
	WebURL   string
	Source   string
	Location *time.Location
	Logger   logrus.FieldLogger
}

// NewModel creates a new TUI model.
// The client parameter accepts any DataSource implementation, enabling
// mock data sources for testing.
func NewModel(ctx context.Context, client DataSource, tuiCfg config.TUIConfig, opts Options) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		opts.Logger = l
	}

	start := newRangeInput("start  " + transactions.InputLayout)
	end := newRangeInput("end    " + transactions.InputLayout)

	return Model{
		ctx:       ctx,
		client:    client,
		requests:  newRequestManager(),
		tuiConfig: tuiCfg,
		webURL:    opts.WebURL,
		source:    opts.Source,
		loc:       opts.Location,
		log:       opts.Logger,

		UI: UIState{
			Mode:   viewList,
			Width:  80,
			Height: 24,
		},
		List: ListState{
			Controller: transactions.NewController(tuiCfg.PageSize),
			Trigger:    transactions.BoundaryTrigger{Threshold: tuiCfg.ScrollThreshold},
		},
		Range: RangeState{
			Start: start,
			End:   end,
		},
		Chart: ChartState{
			Projector: &chart.Projector{},
		},
		Components: UIComponents{
			Viewport:      viewport.New(80, 20),
			ErrorViewport: viewport.New(70, 15),
			HelpViewport:  viewport.New(70, 15),
		},
	}
}

func newRangeInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = len(transactions.InputLayout) + 6
	ti.Width = 30
	return ti
}

// Close cancels every in-flight request.
func (m Model) Close() {
	m.requests.cancelAll()
}

// rows returns the accumulated transactions.
func (m Model) rows() []transactions.Item {
	return m.List.Controller.State().Rows
}

// selectedItem returns the selected transaction, if any.
func (m Model) selectedItem() (transactions.Item, bool) {
	rows := m.rows()
	if m.List.Selected < 0 || m.List.Selected >= len(rows) {
		return transactions.Item{}, false
	}
	return rows[m.List.Selected], true
}

// setStatus shows a transient message in the status bar.
func (m *Model) setStatus(msg string) {
	m.UI.StatusMessage = msg
	m.UI.StatusTime = time.Now()
}
