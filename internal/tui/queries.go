// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/elastic/txcat/internal/chart"
	"github.com/elastic/txcat/internal/transactions"
)

// fetchPage issues req. A newer page request cancels this one.
func (m Model) fetchPage(req transactions.Request) tea.Cmd {
	ctx, done := m.startRequest(requestPage, m.tuiConfig.ListTimeout)
	m.log.WithFields(logrus.Fields{
		"session": req.Session,
		"seq":     req.Seq,
		"cursor":  string(req.Query.AfterKey),
	}).Debug("fetching page")

	client := m.client
	return func() tea.Msg {
		defer done()
		page, err := client.ListTransactions(ctx, req.Query)
		return pageMsg{req: req, page: page, err: err}
	}
}

// fetchStatusCodes loads the status aggregate for the current session.
func (m Model) fetchStatusCodes() tea.Cmd {
	ctx, done := m.startRequest(requestStatusCodes, m.tuiConfig.ChartTimeout)
	session := m.List.Controller.Session()
	filter := chart.Filter{Range: m.List.Controller.Range(), Service: m.Chart.Service}

	client := m.client
	return func() tea.Msg {
		defer done()
		buckets, err := client.StatusCodes(ctx, filter)
		return statusCodesMsg{session: session, buckets: buckets, err: err}
	}
}

func (m Model) fetchTrace(traceID string) tea.Cmd {
	ctx, done := m.startRequest(requestTrace, m.tuiConfig.DetailTimeout)

	client := m.client
	return func() tea.Msg {
		defer done()
		tr, err := client.GetTrace(ctx, traceID)
		return traceMsg{traceID: traceID, trace: tr, err: err}
	}
}

// startSession issues the first page request of a new session along with a
// fresh status aggregate.
func (m *Model) startSession(req transactions.Request) tea.Cmd {
	m.List.Selected = 0
	m.List.Trigger.Reset()
	m.Chart.Loading = true
	m.Chart.Buckets = nil
	return tea.Batch(m.fetchPage(req), m.fetchStatusCodes())
}
