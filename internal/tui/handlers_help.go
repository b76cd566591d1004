// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package tui

import tea "github.com/charmbracelet/bubbletea"

func (m Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "esc", "q", "?":
		m.popView()
		return m, nil
	}

	if viewportScroll(&m.Components.HelpViewport, key) {
		return m, nil
	}

	var cmd tea.Cmd
	m.Components.HelpViewport, cmd = m.Components.HelpViewport.Update(msg)
	return m, cmd
}

func (m Model) handleQuitConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case quitConfirmYesKey, "q":
		m.Close()
		return m, tea.Quit
	case quitConfirmNoKey, "esc":
		m.popView()
		return m, nil
	}
	return m, nil
}

const (
	quitConfirmYesKey = "y"
	quitConfirmNoKey  = "n"
)
