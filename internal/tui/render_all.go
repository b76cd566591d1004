// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderBase renders the main view for a given mode (excluding modal overlays) and appends the help bar.
func (m Model) renderBase(mode viewMode) string {
	var b strings.Builder

	b.WriteString(m.renderTitleHeader())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")

	switch mode {
	case viewDetail:
		b.WriteString(m.renderDetailView())
	case viewRangeInput:
		b.WriteString(m.renderTransactionList(m.getContentHeight()))
		b.WriteString("\n")
		b.WriteString(m.renderRangeInput())
	default:
		b.WriteString(m.renderTransactionList(m.getContentHeight()))
		b.WriteString("\n")
		b.WriteString(m.renderStatusChart())
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())

	return AppStyle.Render(b.String())
}

// View is the main rendering entry point. Modals are drawn centered over
// the view they were opened from.
func (m Model) View() string {
	if m.UI.Width == 0 {
		return "Loading..."
	}

	switch m.UI.Mode {
	case viewErrorModal:
		return m.renderModal(m.renderErrorModal())
	case viewQuitConfirm:
		return m.renderModal(m.renderQuitConfirmModal())
	case viewHelp:
		return m.renderModal(m.renderHelpOverlay())
	}
	return m.renderBase(m.UI.Mode)
}

// renderModal places a modal over the view below it on the stack.
func (m Model) renderModal(modal string) string {
	base := m.renderBase(m.peekViewStack())
	top := lipgloss.Place(
		m.UI.Width, m.UI.Height,
		lipgloss.Center, lipgloss.Center,
		modal,
	)
	return overlayCenter(base, top, m.UI.Width, m.UI.Height)
}

// overlayCenter overlays 'top' onto 'base' by replacing centered lines, preserving background elsewhere.
func overlayCenter(base, top string, width, height int) string {
	baseLines := strings.Split(base, "\n")
	topLines := strings.Split(strings.TrimRight(top, "\n"), "\n")

	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}

	startY := max(0, (height-len(topLines))/2)
	for i, line := range topLines {
		y := startY + i
		if y >= len(baseLines) {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		baseLines[y] = line
	}
	return strings.Join(baseLines, "\n")
}
