// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/elastic/txcat/internal/transactions"
)

// statusFlash is how long a status message counts as "just happened".
const statusFlash = 2 * time.Second

func (m Model) renderRangeInput() string {
	prompt := func(label string, field rangeField) string {
		if m.Range.Focus == field {
			return RangePromptStyle.Render("▸ " + label)
		}
		return DetailMutedStyle.Render("  " + label)
	}

	hints := DetailMutedStyle.Render(lipgloss.JoinHorizontal(
		lipgloss.Left,
		keysHint("apply", "enter"),
		"  ",
		keysHint("switch", "tab"),
		"  ",
		keysHint("cancel", "esc"),
		"  ",
		"leave both empty for all time, format "+transactions.InputLayout,
	))

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		prompt("From ", rangeStart)+m.Range.Start.View(),
		prompt("To   ", rangeEnd)+m.Range.End.View(),
		hints,
	)
	return RangeInputStyle.Width(m.UI.Width - 4).Render(content)
}

func (m Model) renderErrorModal() string {
	modalWidth := min(m.UI.Width-8, 80)

	modalStyle := lipgloss.NewStyle().
		Width(modalWidth).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(errorColor).
		Padding(1, 2).
		Align(lipgloss.Left)

	title := ErrorStyle.Render("⚠ Error")

	justCopied := m.UI.StatusMessage == errorCopiedStatus &&
		time.Since(m.UI.StatusTime) < statusFlash

	scrollInfo := ""
	if m.Components.ErrorViewport.TotalLineCount() > m.Components.ErrorViewport.Height {
		scrollInfo = DetailMutedStyle.Render(fmt.Sprintf(" (scroll: %d%%) ", int(m.Components.ErrorViewport.ScrollPercent()*100)))
	}

	copyStyle := lipgloss.NewStyle().Foreground(successColor).Bold(true)
	copyButton := copyStyle.Render(actionHint(ActionCopy))
	if justCopied {
		copyButton = copyStyle.Render(keysHint("Copy ✓ copied", "y"))
	}

	actions := lipgloss.JoinHorizontal(
		lipgloss.Left,
		copyButton,
		"  ",
		DetailMutedStyle.Render(keysHint("Scroll", "↑", "↓")),
		"  ",
		DetailMutedStyle.Render(keysHint("Close", "esc", "enter")),
		scrollInfo,
	)

	viewportContent := lipgloss.NewStyle().
		Width(modalWidth - 8).
		Render(m.Components.ErrorViewport.View())

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		"",
		viewportContent,
		"",
		actions,
	)
	return modalStyle.Render(content)
}

func (m Model) renderQuitConfirmModal() string {
	modalWidth := min(m.UI.Width-8, 60)

	modalStyle := lipgloss.NewStyle().
		Width(modalWidth).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(secondaryColor).
		Padding(1, 2).
		Align(lipgloss.Left)

	title := lipgloss.NewStyle().Bold(true).Render("Quit?")
	body := DetailMutedStyle.Render("Are you sure you want to quit?")

	actions := lipgloss.JoinHorizontal(
		lipgloss.Left,
		lipgloss.NewStyle().Foreground(successColor).Bold(true).Render(keysHint("Yes", quitConfirmYesKey)),
		"  ",
		DetailMutedStyle.Render(keyHint([]string{quitConfirmNoKey, "esc"}, "No")),
	)

	return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", actions))
}
