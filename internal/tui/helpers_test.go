// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/elastic/txcat/internal/chart"
	"github.com/elastic/txcat/internal/config"
	"github.com/elastic/txcat/internal/transactions"
)

// fakeSource serves canned pages in order and records every query.
type fakeSource struct {
	mu      sync.Mutex
	pages   []*transactions.Page
	queries []transactions.Query
	listErr error

	buckets    []chart.Bucket
	filters    []chart.Filter
	trace      *transactions.Trace
	traceCalls int
}

func (f *fakeSource) ListTransactions(_ context.Context, q transactions.Query) (*transactions.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, q)
	if f.listErr != nil {
		return nil, f.listErr
	}
	if len(f.pages) == 0 {
		return &transactions.Page{Results: []transactions.Item{}}, nil
	}
	p := f.pages[0]
	f.pages = f.pages[1:]
	return p, nil
}

func (f *fakeSource) StatusCodes(_ context.Context, flt chart.Filter) ([]chart.Bucket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filters = append(f.filters, flt)
	return f.buckets, nil
}

func (f *fakeSource) GetTrace(_ context.Context, traceID string) (*transactions.Trace, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.traceCalls++
	if f.trace == nil {
		return &transactions.Trace{TraceID: traceID}, nil
	}
	return f.trace, nil
}

func (f *fakeSource) listCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queries)
}

func newTestModel(t *testing.T, src DataSource) Model {
	t.Helper()
	m := NewModel(context.Background(), src, config.TUIConfig{
		PageSize:        2,
		ScrollThreshold: 1,
		ListTimeout:     time.Minute,
		ChartTimeout:    time.Minute,
		DetailTimeout:   time.Minute,
	}, Options{Location: time.UTC, Source: "test"})
	t.Cleanup(m.Close)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 160, Height: 40})
	return next.(Model)
}

// runCmd executes cmd and flattens batches into the messages they produce.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// feed runs cmd and passes every resulting message back through Update,
// following any commands those produce.
func feed(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for _, msg := range runCmd(cmd) {
		switch msg.(type) {
		case pageMsg, statusCodesMsg, traceMsg, browserOpenedMsg, mountedMsg:
		default:
			continue
		}
		next, c := m.Update(msg)
		m = feed(t, next.(Model), c)
	}
	return m
}

func key(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// press sends k and returns the model and command it produced.
func press(t *testing.T, m Model, k string) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(key(k))
	return next.(Model), cmd
}

func items(ids ...string) []transactions.Item {
	out := make([]transactions.Item, 0, len(ids))
	for _, id := range ids {
		out = append(out, transactions.Item{TraceID: id, EndPoint: "/" + id, ServiceName: "svc", StatusCode: 200})
	}
	return out
}
