// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"sort"
	"strings"
)

// renderHelpContent lists every binding of the view below the help overlay,
// grouped and sorted by label.
func (m Model) renderHelpContent() string {
	bindings := m.FullBindings()
	sort.SliceStable(bindings, func(i, j int) bool {
		if bindings[i].Group == bindings[j].Group {
			return bindings[i].Label < bindings[j].Label
		}
		return bindings[i].Group < bindings[j].Group
	})

	var b strings.Builder
	currentGroup := ""
	for _, kb := range bindings {
		if kb.Group != "" && kb.Group != currentGroup {
			if currentGroup != "" {
				b.WriteString("\n")
			}
			b.WriteString(DetailKeyStyle.Render(kb.Group))
			b.WriteString("\n")
			currentGroup = kb.Group
		}
		b.WriteString("  ")
		b.WriteString(HelpKeyStyle.Render(PadOrTruncate(strings.Join(kb.Keys, "/"), 12)))
		b.WriteString(" ")
		b.WriteString(HelpDescStyle.Render(kb.Label))
		b.WriteString("\n")
	}

	if b.Len() == 0 {
		return "No help available"
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// renderHelpOverlay renders the scrollable hotkeys overlay.
func (m Model) renderHelpOverlay() string {
	title := DetailKeyStyle.Render("Keys") + "  " + DetailMutedStyle.Render(keysHint("close", "esc", "?"))
	return HelpOverlayStyle.Width(min(m.UI.Width-8, 72)).
		Render(title + "\n\n" + m.Components.HelpViewport.View())
}
