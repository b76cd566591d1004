// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestPadLeft(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"abc", 5, "  abc"},
		{"abc", 3, "abc"},
		{"abcdef", 3, "abc"}, // Truncates
		{"", 3, "   "},
		{"x", 1, "x"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			result := PadLeft(tc.input, tc.width)
			if result != tc.expected {
				t.Errorf("PadLeft(%q, %d) = %q, want %q", tc.input, tc.width, result, tc.expected)
			}
		})
	}
}

func TestTruncateWithEllipsis(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"hello world", 11, "hello world"},
		{"hello world", 10, "hello w..."},
		{"hello world", 5, "he..."},
		{"hello", 3, "hel"}, // Too short for ellipsis
		{"hi", 2, "hi"},
		{"hello", 0, ""},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			result := TruncateWithEllipsis(tc.input, tc.maxLen)
			if result != tc.expected {
				t.Errorf("TruncateWithEllipsis(%q, %d) = %q, want %q", tc.input, tc.maxLen, result, tc.expected)
			}
		})
	}
}

func TestPadOrTruncate(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"hello", 10, "hello     "}, // Pad
		{"hello world", 5, "he..."}, // Truncate with ellipsis
		{"hello", 5, "hello"},       // Exact
		{"hi", 3, "hi "},            // Pad
		{"abcd", 2, "ab"},           // Truncate without ellipsis (too short)
		{"hello", 0, "hello"},       // Zero width returns original
		{"", 5, "     "},            // Empty string pads
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			result := PadOrTruncate(tc.input, tc.width)
			if result != tc.expected {
				t.Errorf("PadOrTruncate(%q, %d) = %q, want %q", tc.input, tc.width, result, tc.expected)
			}
		})
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		width   int
		checkFn func(t *testing.T, result string)
	}{
		{
			name:  "no wrap needed",
			text:  "short",
			width: 10,
			checkFn: func(t *testing.T, result string) {
				if result != "short" {
					t.Errorf("Expected 'short', got %q", result)
				}
			},
		},
		{
			name:  "wraps long line",
			text:  "this is a long line that needs wrapping",
			width: 10,
			checkFn: func(t *testing.T, result string) {
				lines := strings.Split(result, "\n")
				if len(lines) < 2 {
					t.Errorf("Expected multiple lines, got %d", len(lines))
				}
			},
		},
		{
			name:  "preserves existing newlines",
			text:  "line1\nline2\nline3",
			width: 50,
			checkFn: func(t *testing.T, result string) {
				lines := strings.Split(result, "\n")
				if len(lines) != 3 {
					t.Errorf("Expected 3 lines, got %d", len(lines))
				}
			},
		},
		{
			name:  "zero width returns original",
			text:  "test",
			width: 0,
			checkFn: func(t *testing.T, result string) {
				if result != "test" {
					t.Errorf("Expected 'test', got %q", result)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := WrapText(tc.text, tc.width)
			tc.checkFn(t, result)
		})
	}
}

func TestSingleLine(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"hello\nworld", "hello world"},
		{"line1\r\nline2", "line1 line2"},
		{"no newlines", "no newlines"},
		{"", ""},
		{"\n\n", "  "},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			result := singleLine(tc.input)
			if result != tc.expected {
				t.Errorf("singleLine(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestPadOrTruncate_WideRunes(t *testing.T) {
	got := PadOrTruncate("日本語テキスト", 8)
	if w := ansi.StringWidth(got); w != 8 {
		t.Fatalf("PadOrTruncate returned %q (%d cells), want 8", got, w)
	}
	if !strings.Contains(got, ellipsis) {
		t.Errorf("PadOrTruncate(%q) = %q, want an ellipsis", "日本語テキスト", got)
	}
}

func TestCalcVisibleRange(t *testing.T) {
	tests := []struct {
		name               string
		cursor, listLen, h int
		wantStart, wantEnd int
	}{
		{"short list", 0, 3, 10, 0, 3},
		{"cursor centered", 10, 50, 10, 5, 15},
		{"cursor near end", 48, 50, 10, 40, 50},
		{"zero height shows one row", 4, 10, 0, 4, 5},
		{"empty list", 0, 0, 5, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			start, end := calcVisibleRange(tc.cursor, tc.listLen, tc.h)
			if start != tc.wantStart || end != tc.wantEnd {
				t.Errorf("calcVisibleRange(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tc.cursor, tc.listLen, tc.h, start, end, tc.wantStart, tc.wantEnd)
			}
		})
	}
}

func TestListColumns(t *testing.T) {
	if got := listColumns(40); got != minURLWidth {
		t.Errorf("listColumns(40) = %d, want minimum %d", got, minURLWidth)
	}
	if narrow, wide := listColumns(150), listColumns(200); wide-narrow != 50 {
		t.Errorf("URL column should absorb extra width: %d -> %d", narrow, wide)
	}
}

func TestBuildDetailURL(t *testing.T) {
	tests := []struct {
		base, id, want string
	}{
		{"http://localhost:3000", "abc", "http://localhost:3000/transactions/abc"},
		{"http://localhost:3000/", "abc", "http://localhost:3000/transactions/abc"},
		{"https://apm.example.com/ui", "a-b", "https://apm.example.com/ui/transactions/a-b"},
	}
	for _, tc := range tests {
		if got := buildDetailURL(tc.base, tc.id); got != tc.want {
			t.Errorf("buildDetailURL(%q, %q) = %q, want %q", tc.base, tc.id, got, tc.want)
		}
	}
}
