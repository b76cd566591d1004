// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package tui

import "strings"

// renderHelpBar renders the quick bindings of the current view.
func (m Model) renderHelpBar() string {
	bindings := m.QuickBindings()
	keys := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		keys = append(keys, HelpKeyStyle.Render(strings.Join(kb.Keys, "/"))+HelpDescStyle.Render(" "+kb.Label))
	}
	return HelpStyle.Render(strings.Join(keys, "  "))
}
