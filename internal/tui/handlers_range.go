// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/elastic/txcat/internal/transactions"
)

// enterRangeInput opens the range editor prefilled with the committed range.
func (m Model) enterRangeInput() (Model, tea.Cmd) {
	r := m.List.Controller.Range()
	m.Range.Start.SetValue(m.formatInputBound(r.Start))
	m.Range.End.SetValue(m.formatInputBound(r.End))
	m.Range.Focus = rangeStart
	m.pushView(viewRangeInput)
	return m, m.focusRange()
}

func (m Model) handleRangeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.blurRange()
		m.popView()
		return m, nil
	case "tab", "shift+tab", "up", "down":
		if m.Range.Focus == rangeStart {
			m.Range.Focus = rangeEnd
		} else {
			m.Range.Focus = rangeStart
		}
		return m, m.focusRange()
	case "enter":
		return m.commitRange()
	}

	cmd := m.updateRangeInputs(msg)
	return m, cmd
}

// commitRange validates the inputs. A rejected range shows the error modal
// over the editor and leaves the list untouched.
func (m Model) commitRange() (Model, tea.Cmd) {
	r, err := transactions.ParseRange(m.Range.Start.Value(), m.Range.End.Value(), m.loc)
	if err != nil {
		m.UI.Err = err
		m.showErrorModal()
		return m, nil
	}

	req, _, err := m.List.Controller.Handle(transactions.RangeCommitted{Range: r})
	if err != nil {
		m.UI.Err = err
		m.showErrorModal()
		return m, nil
	}

	m.blurRange()
	m.popView()
	m.setStatus("Range: " + r.String())
	return m, m.startSession(req)
}

func (m *Model) updateRangeInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if m.Range.Focus == rangeStart {
		m.Range.Start, cmd = m.Range.Start.Update(msg)
	} else {
		m.Range.End, cmd = m.Range.End.Update(msg)
	}
	return cmd
}

func (m *Model) focusRange() tea.Cmd {
	focus, blur := &m.Range.Start, &m.Range.End
	if m.Range.Focus == rangeEnd {
		focus, blur = blur, focus
	}
	blur.Blur()
	return focus.Focus()
}

func (m *Model) blurRange() {
	m.Range.Start.Blur()
	m.Range.End.Blur()
}

// formatInputBound renders a committed bound the way it is typed.
func (m Model) formatInputBound(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.In(m.loc).Format(transactions.InputLayout)
}
