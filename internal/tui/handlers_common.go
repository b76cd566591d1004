// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	"golang.design/x/clipboard"
)

// listNav handles standard list navigation, returning the new cursor position.
// cursor: current position, listLen: total items, key: the pressed key.
// Returns -1 if the key is not a navigation key.
func listNav(cursor, listLen int, key string) int {
	switch key {
	case "up", "k":
		if cursor > 0 {
			return cursor - 1
		}
		return cursor
	case "down", "j":
		if cursor < listLen-1 {
			return cursor + 1
		}
		return cursor
	case "home", "g":
		return 0
	case "end", "G":
		if listLen > 0 {
			return listLen - 1
		}
		return 0
	case "pgup":
		return max(cursor-10, 0)
	case "pgdown":
		if listLen == 0 {
			return 0
		}
		return min(cursor+10, listLen-1)
	}
	return -1 // Not a navigation key
}

// isNavKey returns true if the key is a list navigation key
func isNavKey(key string) bool {
	return listNav(0, 1, key) != -1
}

// viewportScroll handles standard viewport scrolling keys.
// Returns true if the key was handled, false otherwise.
func viewportScroll(vp *viewport.Model, key string) bool {
	switch key {
	case "j", "down":
		vp.ScrollDown(1)
	case "k", "up":
		vp.ScrollUp(1)
	case "d", "pgdown":
		vp.HalfPageDown()
	case "u", "pgup":
		vp.HalfPageUp()
	case "g", "home":
		vp.GotoTop()
	case "G", "end":
		vp.GotoBottom()
	default:
		return false
	}
	return true
}

// pushView saves current mode to the view stack and transitions to a new view
func (m *Model) pushView(newMode viewMode) {
	m.UI.ViewStack = append(m.UI.ViewStack, ViewContext{Mode: m.UI.Mode})
	m.UI.Mode = newMode
}

// popView returns to the previous view from the stack, returns false if stack is empty
func (m *Model) popView() bool {
	if len(m.UI.ViewStack) == 0 {
		return false
	}
	n := len(m.UI.ViewStack) - 1
	m.UI.Mode = m.UI.ViewStack[n].Mode
	m.UI.ViewStack = m.UI.ViewStack[:n]
	return true
}

// peekViewStack returns the mode at the top of the stack without removing it.
// Returns the current mode if stack is empty (for rendering background)
func (m Model) peekViewStack() viewMode {
	if len(m.UI.ViewStack) == 0 {
		return m.UI.Mode
	}
	return m.UI.ViewStack[len(m.UI.ViewStack)-1].Mode
}

// writeClipboard is swapped in tests.
var writeClipboard = func(text string) error {
	if err := clipboard.Init(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

// copyToClipboard copies text and sets status message
func (m *Model) copyToClipboard(text, successMsg string) {
	if err := writeClipboard(text); err != nil {
		m.setStatus("Clipboard error: " + err.Error())
		return
	}
	m.setStatus(successMsg)
}
