// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/elastic/txcat/internal/transactions"
)

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if isNavKey(key) {
		return m.moveSelection(key)
	}

	switch GetAction(key) {
	case ActionQuit:
		m.pushView(viewQuitConfirm)
		return m, nil
	case ActionSelect:
		return m.openDetail()
	case ActionRange:
		return m.enterRangeInput()
	case ActionClearRange:
		if m.List.Controller.Range().IsZero() {
			return m, nil
		}
		m.setStatus("Range cleared")
		return m.dispatch(transactions.RangeCleared{})
	case ActionRefresh:
		m.setStatus("Refreshing...")
		return m.dispatch(transactions.Refreshed{})
	case ActionCopy:
		if item, ok := m.selectedItem(); ok {
			m.copyToClipboard(item.TraceID, "Trace ID copied to clipboard!")
		}
		return m, nil
	case ActionCopyPath:
		if item, ok := m.selectedItem(); ok {
			m.copyToClipboard(transactions.DetailPath(item.TraceID), "Detail path copied to clipboard!")
		}
		return m, nil
	case ActionOpenBrowser:
		if item, ok := m.selectedItem(); ok && m.webURL != "" {
			return m, openDetailInBrowser(m.webURL, item.TraceID)
		}
		return m, nil
	}
	return m, nil
}

// moveSelection applies a navigation key to the list selection and asks for
// the next page when the selection enters the bottom threshold.
func (m Model) moveSelection(key string) (Model, tea.Cmd) {
	rows := len(m.rows())
	next := listNav(m.List.Selected, rows, key)
	if next < 0 {
		return m, nil
	}
	m.List.Selected = next

	if !m.List.Trigger.Check(m.List.Selected, rows) {
		return m, nil
	}
	return m.dispatch(transactions.BoundaryReached{})
}

// openDetail navigates to /transactions/<traceId> for the selected row.
func (m Model) openDetail() (Model, tea.Cmd) {
	item, ok := m.selectedItem()
	if !ok {
		return m, nil
	}
	m.pushView(viewDetail)
	m.Components.Viewport.GotoTop()

	if m.Detail.TraceID == item.TraceID && m.Detail.Trace != nil {
		m.updateDetailContent()
		return m, nil
	}

	m.Detail = DetailState{TraceID: item.TraceID, Loading: true}
	m.updateDetailContent()
	return m, m.fetchTrace(item.TraceID)
}
