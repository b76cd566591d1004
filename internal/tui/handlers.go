// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleKey routes key events to mode-specific handlers
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	switch msg.String() {
	case "ctrl+c":
		m.Close()
		return m, tea.Quit
	case "?":
		if m.HelpEnabled() && !m.isTextInputActive() {
			m.pushView(viewHelp)
			m.Components.HelpViewport.SetContent(m.renderHelpContent())
			m.Components.HelpViewport.GotoTop()
			return m, nil
		}
	}

	// Mode-specific keys
	switch m.UI.Mode {
	case viewList:
		return m.handleListKey(msg)
	case viewRangeInput:
		return m.handleRangeKey(msg)
	case viewDetail:
		return m.handleDetailKey(msg)
	case viewErrorModal:
		return m.handleErrorModalKey(msg)
	case viewQuitConfirm:
		return m.handleQuitConfirmKey(msg)
	case viewHelp:
		return m.handleHelpKey(msg)
	}

	return m, nil
}

// isTextInputActive returns true when a text input is active, disabling global hotkeys.
func (m Model) isTextInputActive() bool {
	return m.UI.Mode == viewRangeInput
}

// handleMouse handles mouse wheel scrolling across views
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	var key string
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		key = "up"
	case tea.MouseButtonWheelDown:
		key = "down"
	default:
		return m, nil
	}

	switch m.UI.Mode {
	case viewList:
		return m.moveSelection(key)
	case viewDetail:
		if key == "up" {
			m.Components.Viewport.ScrollUp(3)
		} else {
			m.Components.Viewport.ScrollDown(3)
		}
	case viewErrorModal:
		viewportScroll(&m.Components.ErrorViewport, key)
	case viewHelp:
		viewportScroll(&m.Components.HelpViewport, key)
	}
	return m, nil
}
