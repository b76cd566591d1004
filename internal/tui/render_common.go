// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package tui

// Layout constants
const (
	titleHeaderHeight = 1
	statusBarHeight   = 1
	helpBarHeight     = 1
	layoutPadding     = 2
	chartPanelHeight  = 7 // border (2) + title + up to 4 bars
)

// getContentHeight returns the available height for the transaction list,
// accounting for title, status bar, chart panel and help bar.
func (m Model) getContentHeight() int {
	const newlines = 4 // Newlines between sections

	fixedHeight := titleHeaderHeight + statusBarHeight + chartPanelHeight + helpBarHeight + layoutPadding + newlines

	contentHeight := m.UI.Height - fixedHeight
	if contentHeight < 5 {
		contentHeight = 5
	}
	return contentHeight
}

// getFullScreenHeight returns height for full-screen views (detail)
func (m Model) getFullScreenHeight() int {
	const extraPadding = 2 // Extra padding for full-screen views

	fixedHeight := titleHeaderHeight + statusBarHeight + helpBarHeight + layoutPadding + extraPadding

	contentHeight := m.UI.Height - fixedHeight
	if contentHeight < 5 {
		contentHeight = 5
	}
	return contentHeight
}

// calcVisibleRange calculates the start and end indices for a centered scrolling list.
// rowsHeight is the number of rows that fit.
func calcVisibleRange(cursor, listLen, rowsHeight int) (startIdx, endIdx int) {
	if rowsHeight < 1 {
		rowsHeight = 1
	}

	startIdx = cursor - rowsHeight/2
	if startIdx < 0 {
		startIdx = 0
	}
	endIdx = startIdx + rowsHeight
	if endIdx > listLen {
		endIdx = listLen
		startIdx = endIdx - rowsHeight
		if startIdx < 0 {
			startIdx = 0
		}
	}
	return startIdx, endIdx
}
