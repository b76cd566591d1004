// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/elastic/txcat/internal/transactions"
)

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch GetAction(key) {
	case ActionBack, ActionQuit:
		m.popView()
		return m, nil
	case ActionCopy:
		m.copyToClipboard(m.Detail.TraceID, "Trace ID copied to clipboard!")
		return m, nil
	case ActionCopyPath:
		m.copyToClipboard(transactions.DetailPath(m.Detail.TraceID), "Detail path copied to clipboard!")
		return m, nil
	case ActionOpenBrowser:
		if m.webURL != "" {
			return m, openDetailInBrowser(m.webURL, m.Detail.TraceID)
		}
		return m, nil
	case ActionRefresh:
		m.Detail.Loading = true
		m.Detail.Trace = nil
		m.updateDetailContent()
		return m, m.fetchTrace(m.Detail.TraceID)
	}

	if viewportScroll(&m.Components.Viewport, key) {
		return m, nil
	}

	var cmd tea.Cmd
	m.Components.Viewport, cmd = m.Components.Viewport.Update(msg)
	return m, cmd
}

// updateDetailContent re-renders the trace tree into the detail viewport.
func (m *Model) updateDetailContent() {
	m.Components.Viewport.SetContent(m.renderTraceDetail(m.Components.Viewport.Width))
}
