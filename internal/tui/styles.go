// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/elastic/txcat/internal/chart"
	"github.com/elastic/txcat/internal/transactions"
)

// Colors
var (
	primaryColor   = lipgloss.Color("#7D56F4")
	secondaryColor = lipgloss.Color("#5A5A5A")
	successColor   = lipgloss.Color(chart.Palette[0])
	warningColor   = lipgloss.Color(chart.Palette[1])
	errorColor     = lipgloss.Color(chart.Palette[2])
	infoColor      = lipgloss.Color("#61AFEF")
	fgColor        = lipgloss.Color("#E0E0E0")
	mutedColor     = lipgloss.Color("#6C757D")
)

// Styles
var (
	// Main app container
	AppStyle = lipgloss.NewStyle().
			Padding(0, 1)

	// Title header
	TitleHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(primaryColor).
				Padding(0, 1)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(fgColor).
			Background(lipgloss.Color("#333333")).
			Padding(0, 1)

	StatusKeyStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	StatusValueStyle = lipgloss.NewStyle().
				Foreground(fgColor)

	// Transaction list
	ListStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(secondaryColor).
			Padding(0, 1)

	RowStyle = lipgloss.NewStyle().
			PaddingLeft(1)

	SelectedRowStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#4A4A7A")).
				Foreground(lipgloss.Color("#FFFFFF")).
				Bold(true).
				PaddingLeft(1)

	// Column header row
	HeaderRowStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(secondaryColor).
			PaddingLeft(1)

	TimestampStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	ServiceStyle = lipgloss.NewStyle().
			Foreground(infoColor).
			Bold(true)

	// Range editor
	RangeInputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1)

	RangePromptStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true)

	// Detail panel
	DetailStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(secondaryColor).
			Padding(1)

	DetailKeyStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	DetailValueStyle = lipgloss.NewStyle().
				Foreground(fgColor)

	DetailMutedStyle = lipgloss.NewStyle().
				Foreground(mutedColor)

	// Chart panel
	ChartStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(secondaryColor).
			Padding(0, 1)

	// Help bar
	HelpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	HelpOverlayStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(secondaryColor).
				Padding(1, 2)

	// Error style
	ErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	// Loading and end-of-list markers
	LoadingStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)
)

// StatusBadgeStyle returns the badge style for an HTTP status class.
// Width is controlled by column layout, not by this style
func StatusBadgeStyle(class transactions.StatusClass) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch class {
	case transactions.StatusSuccess:
		return base.Foreground(lipgloss.Color("#FFFFFF")).Background(successColor)
	case transactions.StatusWarning:
		return base.Foreground(lipgloss.Color("#000000")).Background(warningColor)
	default:
		return base.Foreground(lipgloss.Color("#FFFFFF")).Background(errorColor)
	}
}

// AbnormalBadgeStyle marks transactions flagged as abnormal.
var AbnormalBadgeStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FFFFFF")).
	Background(errorColor).
	Bold(true)
