// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"strings"
	"time"
)

// statusMessageTTL is how long a status message stays in the bar.
const statusMessageTTL = 4 * time.Second

// renderStatusBar renders the paging state, the last refresh and any
// transient status message.
func (m Model) renderStatusBar() string {
	state := m.List.Controller.State()

	var parts []string
	parts = append(parts, StatusKeyStyle.Render("Loaded: ")+
		StatusValueStyle.Render(fmt.Sprintf("%d/%d", state.Len(), state.TotalCount)))

	if len(state.Rows) > 0 {
		parts = append(parts, StatusKeyStyle.Render("Row: ")+
			StatusValueStyle.Render(fmt.Sprintf("%d", m.List.Selected+1)))
	}
	if m.Chart.Service != "" {
		parts = append(parts, StatusKeyStyle.Render("Service: ")+StatusValueStyle.Render(m.Chart.Service))
	}
	if !m.UI.LastRefresh.IsZero() {
		parts = append(parts, StatusKeyStyle.Render("Updated: ")+
			StatusValueStyle.Render(m.UI.LastRefresh.Format("15:04:05")))
	}
	if m.UI.StatusMessage != "" && time.Since(m.UI.StatusTime) < statusMessageTTL {
		parts = append(parts, StatusValueStyle.Render(TruncateWithEllipsis(m.UI.StatusMessage, 40)))
	}
	if m.List.Controller.Loading() || m.Chart.Loading || m.Detail.Loading {
		parts = append(parts, LoadingStyle.Render("loading..."))
	}
	if m.UI.Err != nil {
		parts = append(parts, ErrorStyle.Render("error"))
	}

	return StatusBarStyle.Width(m.UI.Width - 2).Render(strings.Join(parts, "  │  "))
}
