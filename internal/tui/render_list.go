// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/elastic/txcat/internal/transactions"
)

// Column widths of the transaction list. The API URL column takes the rest.
const (
	traceIDWidth  = 32
	serviceWidth  = 18
	durationWidth = 13
	dateWidth     = 19
	statusWidth   = 6
	abnormalWidth = 8
	minURLWidth   = 12
)

// listColumns computes the flexible API URL column for the given list width.
func listColumns(width int) (urlWidth int) {
	// six separators, then border, padding and row indent
	fixed := traceIDWidth + serviceWidth + durationWidth + dateWidth + statusWidth + abnormalWidth + 6
	urlWidth = width - fixed - 8
	if urlWidth < minURLWidth {
		urlWidth = minURLWidth
	}
	return urlWidth
}

func (m Model) renderTransactionList(listHeight int) string {
	width := m.UI.Width - 4
	state := m.List.Controller.State()
	rows := state.Rows

	if len(rows) == 0 {
		var body string
		switch {
		case m.List.Controller.Loading():
			body = LoadingStyle.Render("Loading transactions...")
		default:
			body = LoadingStyle.Render("No transactions found in the selected range.")
		}
		return ListStyle.Width(width).Height(listHeight).Render(body)
	}

	urlWidth := listColumns(m.UI.Width)
	header := HeaderRowStyle.Render(strings.Join([]string{
		PadOrTruncate("TRACE ID", traceIDWidth),
		PadOrTruncate("API URL", urlWidth),
		PadOrTruncate("SERVICE NAME", serviceWidth),
		PadOrTruncate("RESPONSE TIME", durationWidth),
		PadOrTruncate("DATE", dateWidth),
		PadOrTruncate("STATUS", statusWidth),
		PadOrTruncate("ABNORMAL", abnormalWidth),
	}, " "))

	// border (2), header with rule (2), footer marker (1)
	rowsHeight := listHeight - 5
	startIdx, endIdx := calcVisibleRange(m.List.Selected, len(rows), rowsHeight)

	lines := make([]string, 0, endIdx-startIdx+2)
	lines = append(lines, header)
	for i := startIdx; i < endIdx; i++ {
		lines = append(lines, m.renderTransactionRow(rows[i], urlWidth, i == m.List.Selected))
	}
	lines = append(lines, m.renderListFooter(state))

	return ListStyle.Width(width).Height(listHeight).Render(strings.Join(lines, "\n"))
}

func (m Model) renderTransactionRow(item transactions.Item, urlWidth int, selected bool) string {
	cells := []string{
		PadOrTruncate(item.TraceID, traceIDWidth),
		PadOrTruncate(singleLine(item.EndPoint), urlWidth),
		PadOrTruncate(item.ServiceName, serviceWidth),
		PadLeft(transactions.FormatDuration(item.Duration), durationWidth),
		PadOrTruncate(transactions.FormatTimestamp(item.StartDateTime), dateWidth),
	}
	text := strings.Join(cells, " ") + " "

	status := StatusBadgeStyle(transactions.ClassifyStatus(item.StatusCode)).
		Render(PadOrTruncate(" "+strconv.Itoa(item.StatusCode), statusWidth))
	abnormal := strings.Repeat(" ", abnormalWidth)
	if item.Abnormal {
		abnormal = AbnormalBadgeStyle.Render(PadOrTruncate(" ABNORMAL", abnormalWidth))
	}

	if selected {
		return SelectedRowStyle.Render(text) + status + " " + abnormal
	}
	return RowStyle.Render(text) + status + " " + abnormal
}

// renderListFooter shows the loading marker while a page is outstanding and
// the end marker once nothing more can be fetched.
func (m Model) renderListFooter(state transactions.State) string {
	switch {
	case m.List.Controller.Loading():
		return LoadingStyle.Render(" Loading more transactions...")
	case state.EndOfData():
		return LoadingStyle.Render(fmt.Sprintf(" End of list: %d of %d transactions", state.Len(), state.TotalCount))
	default:
		return LoadingStyle.Render(fmt.Sprintf(" %d of %d loaded, scroll for more", state.Len(), state.TotalCount))
	}
}
