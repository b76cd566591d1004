// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"strings"

	"github.com/elastic/txcat/internal/transactions"
)

// renderDetailView renders the trace detail screen around the viewport.
func (m Model) renderDetailView() string {
	title := DetailKeyStyle.Render("Trace ") +
		DetailValueStyle.Render(transactions.DetailPath(m.Detail.TraceID))

	scroll := ""
	if m.Components.Viewport.TotalLineCount() > m.Components.Viewport.Height {
		scroll = DetailMutedStyle.Render(fmt.Sprintf("  %d%%", int(m.Components.Viewport.ScrollPercent()*100)))
	}

	return DetailStyle.Width(m.UI.Width - 2).Height(m.getFullScreenHeight()).
		Render(title + scroll + "\n" + m.Components.Viewport.View())
}

// renderTraceDetail renders the span tree of the loaded trace.
func (m Model) renderTraceDetail(width int) string {
	if m.Detail.Loading {
		return LoadingStyle.Render("Loading trace...")
	}
	tr := m.Detail.Trace
	if tr == nil || len(tr.Spans) == 0 {
		return DetailMutedStyle.Render("No spans found for this trace.")
	}

	var b strings.Builder
	writeField := func(key, value string) {
		b.WriteString(DetailKeyStyle.Render(PadOrTruncate(key, 10)))
		b.WriteString(DetailValueStyle.Render(value))
		b.WriteString("\n")
	}
	writeField("Trace ID", tr.TraceID)
	writeField("Spans", fmt.Sprintf("%d", len(tr.Spans)))
	writeField("Duration", transactions.FormatDuration(float64(tr.Duration().Microseconds())/1000))
	b.WriteString("\n")

	const durationCol = 13
	const statusCol = 6
	nameWidth := max(width-durationCol-statusCol-serviceWidth-4, 20)

	for _, node := range tr.Tree() {
		indent := strings.Repeat("  ", node.Depth)
		marker := "• "
		if node.Kind == "transaction" {
			marker = "▸ "
		}
		name := PadOrTruncate(indent+marker+singleLine(node.Name), nameWidth)

		status := strings.Repeat(" ", statusCol)
		if node.StatusCode != 0 {
			status = StatusBadgeStyle(transactions.ClassifyStatus(node.StatusCode)).
				Render(PadOrTruncate(fmt.Sprintf(" %d", node.StatusCode), statusCol))
		} else if node.Outcome == "failure" {
			status = ErrorStyle.Render(PadOrTruncate("fail", statusCol))
		}

		b.WriteString(DetailValueStyle.Render(name))
		b.WriteString(" ")
		b.WriteString(ServiceStyle.Render(PadOrTruncate(node.ServiceName, serviceWidth)))
		b.WriteString(" ")
		b.WriteString(TimestampStyle.Render(PadLeft(transactions.FormatDuration(node.Duration), durationCol)))
		b.WriteString(" ")
		b.WriteString(status)
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}
