// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/elastic/txcat/internal/chart"
)

// maxChartBars is how many bars fit in the chart panel.
const maxChartBars = chartPanelHeight - 3

// renderStatusChart renders the status-code aggregate as horizontal bars,
// one per bucket in server order.
func (m Model) renderStatusChart() string {
	width := m.UI.Width - 4
	title := DetailKeyStyle.Render("HTTP status codes")

	var body string
	switch {
	case m.Chart.Loading:
		body = LoadingStyle.Render("Loading status codes...")
	case len(m.Chart.Buckets) == 0:
		body = LoadingStyle.Render("No status codes in the selected range.")
	default:
		series := m.Chart.Projector.Project(m.Chart.Buckets)
		title += DetailMutedStyle.Render(fmt.Sprintf("  total %d", series.Total()))
		body = renderBars(series, width-4)
	}

	return ChartStyle.Width(width).Height(chartPanelHeight - 2).Render(title + "\n" + body)
}

// renderBars draws up to maxChartBars bars scaled to the largest value.
func renderBars(s chart.Series, width int) string {
	const labelWidth = 6
	const countWidth = 10

	var peak int64
	for _, v := range s.Values {
		peak = max(peak, v)
	}
	barSpace := max(width-labelWidth-countWidth-2, 1)

	n := min(s.Len(), maxChartBars)
	lines := make([]string, 0, n+1)
	for i := 0; i < n; i++ {
		barLen := 0
		if peak > 0 {
			barLen = int(s.Values[i] * int64(barSpace) / peak)
		}
		if s.Values[i] > 0 && barLen == 0 {
			barLen = 1
		}
		bar := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Colors[i])).Render(strings.Repeat("█", barLen))
		lines = append(lines, PadOrTruncate(s.Labels[i], labelWidth)+bar+" "+fmt.Sprintf("%d", s.Values[i]))
	}
	if extra := s.Len() - n; extra > 0 {
		lines[n-1] += DetailMutedStyle.Render(fmt.Sprintf("  (+%d more)", extra))
	}
	return strings.Join(lines, "\n")
}
