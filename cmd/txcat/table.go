// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"

	"github.com/elastic/txcat/internal/transactions"
)

type displayColumn struct {
	Label string
	Width int // 0 = flex
	Value func(transactions.Item) string
}

// transactionColumns mirrors the columns of the dashboard list.
var transactionColumns = []displayColumn{
	{Label: "TRACE ID", Width: 32, Value: func(it transactions.Item) string { return it.TraceID }},
	{Label: "API URL", Value: func(it transactions.Item) string { return it.EndPoint }},
	{Label: "SERVICE NAME", Width: 18, Value: func(it transactions.Item) string { return it.ServiceName }},
	{Label: "RESPONSE TIME", Width: 13, Value: func(it transactions.Item) string { return transactions.FormatDuration(it.Duration) }},
	{Label: "DATE", Width: 19, Value: func(it transactions.Item) string { return transactions.FormatTimestamp(it.StartDateTime) }},
	{Label: "STATUS", Width: 6, Value: func(it transactions.Item) string { return strconv.Itoa(it.StatusCode) }},
	{Label: "ABNORMAL", Width: 8, Value: func(it transactions.Item) string {
		if it.Abnormal {
			return "yes"
		}
		return ""
	}},
}

type tableRenderer struct {
	out     io.Writer
	columns []displayColumn
	widths  []int
	sep     string
}

func newTableRenderer(out io.Writer, totalWidth int) *tableRenderer {
	return &tableRenderer{
		out:     out,
		columns: transactionColumns,
		widths:  computeColumnWidths(transactionColumns, totalWidth),
		sep:     " ",
	}
}

func computeColumnWidths(columns []displayColumn, totalWidth int) []int {
	if totalWidth <= 0 {
		totalWidth = 80
	}
	widths := make([]int, len(columns))
	separators := max(len(columns)-1, 0)
	fixed := 0
	flexIdx := -1
	for i, col := range columns {
		if col.Width > 0 {
			fixed += col.Width
		} else if flexIdx < 0 {
			flexIdx = i
		}
	}
	available := max(totalWidth-fixed-separators, 10)
	for i, col := range columns {
		switch {
		case col.Width > 0:
			widths[i] = col.Width
		case i == flexIdx:
			widths[i] = available
		default:
			widths[i] = 10
		}
	}
	return widths
}

func detectTerminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	if env := os.Getenv("COLUMNS"); env != "" {
		if val, err := strconv.Atoi(env); err == nil && val > 0 {
			return val
		}
	}
	return 80
}

func (t *tableRenderer) RenderHeader() {
	parts := make([]string, len(t.columns))
	for i, col := range t.columns {
		parts[i] = padOrTruncate(col.Label, t.widths[i])
	}
	fmt.Fprintln(t.out, strings.TrimRight(strings.Join(parts, t.sep), " "))
}

func (t *tableRenderer) RenderRows(items []transactions.Item) {
	for _, it := range items {
		parts := make([]string, len(t.columns))
		for i, col := range t.columns {
			value := strings.NewReplacer("\n", " ", "\r", " ").Replace(col.Value(it))
			parts[i] = padOrTruncate(value, t.widths[i])
		}
		fmt.Fprintln(t.out, strings.TrimRight(strings.Join(parts, t.sep), " "))
	}
}

func padOrTruncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	w := ansi.StringWidth(value)
	if w > width {
		return ansi.Truncate(value, width, "")
	}
	return value + strings.Repeat(" ", width-w)
}
