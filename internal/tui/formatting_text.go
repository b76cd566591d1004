// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const ellipsis = "..."

// PadLeft pads a string to the left to reach the specified display width
func PadLeft(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return ansi.Truncate(s, width, "")
	}
	return strings.Repeat(" ", width-w) + s
}

// TruncateWithEllipsis truncates a string to maxLen cells, adding "..." if truncated
func TruncateWithEllipsis(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= maxLen {
		return s
	}
	if maxLen <= len(ellipsis) {
		return ansi.Truncate(s, maxLen, "")
	}
	return ansi.Truncate(s, maxLen, ellipsis)
}

// PadOrTruncate ensures a string is exactly the given display width, padding
// with spaces or truncating
func PadOrTruncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	s = TruncateWithEllipsis(s, width)
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

// WrapText wraps s to width cells, breaking long words when needed.
func WrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Wrap(s, width, "")
}

// singleLine collapses line breaks so a value fits a table cell.
func singleLine(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}
