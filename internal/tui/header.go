// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const appTitle = "=ↀ_ↀ= txcat"

// renderTitleHeader renders the top header with title and the active range.
func (m Model) renderTitleHeader() string {
	title := appTitle
	if m.UI.Mode == viewDetail || (m.UI.Mode != viewList && m.peekViewStack() == viewDetail) {
		title += " / trace"
	}

	var infoParts []string
	if m.source != "" {
		infoParts = append(infoParts, "Source: "+m.source)
	}
	infoParts = append(infoParts, "Range: "+m.List.Controller.Range().String())
	rightInfo := lipgloss.NewStyle().Foreground(fgColor).Render("[ " + strings.Join(infoParts, " │ ") + " ]")

	availableWidth := m.UI.Width - 2
	titleLen := lipgloss.Width(title)
	rightInfoLen := lipgloss.Width(rightInfo)

	if titleLen+rightInfoLen+2 >= availableWidth {
		line := strings.Repeat("═", max(availableWidth-titleLen-1, 0))
		return TitleHeaderStyle.Width(m.UI.Width).Render(title + " " + line)
	}

	line := strings.Repeat("═", availableWidth-titleLen-rightInfoLen-2)
	return TitleHeaderStyle.Width(m.UI.Width).Render(title + " " + line + " " + rightInfo)
}
