// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package tui

// ViewKeymap returns the full keymap for the current view/mode.
func (m Model) ViewKeymap() []KeyBinding {
	mode := m.UI.Mode
	if mode == viewHelp {
		mode = m.peekViewStack()
	}
	switch mode {
	case viewList:
		return m.keymapList()
	case viewRangeInput:
		return keymapRangeInput()
	case viewDetail:
		return m.keymapDetail()
	case viewErrorModal:
		return keymapErrorModal()
	case viewQuitConfirm:
		return []KeyBinding{
			CombinedBinding([]string{quitConfirmYesKey}, "quit", KeyKindQuick, "System"),
			CombinedBinding([]string{quitConfirmNoKey}, "cancel", KeyKindQuick, "System"),
		}
	default:
		return nil
	}
}

func (m Model) keymapList() []KeyBinding {
	quick := []KeyBinding{
		ScrollBinding(KeyKindQuick),
		ActionBindingWithLabel(ActionSelect, "trace", KeyKindQuick, "View"),
		ActionBinding(ActionRange, KeyKindQuick, "Filter"),
		ActionBinding(ActionRefresh, KeyKindQuick, "View"),
		ActionBinding(ActionCopy, KeyKindQuick, "Clipboard"),
	}

	full := []KeyBinding{
		ActionBinding(ActionPageUp, KeyKindFull, "Navigation"),
		ActionBinding(ActionPageDown, KeyKindFull, "Navigation"),
		ActionBinding(ActionGoTop, KeyKindFull, "Navigation"),
		ActionBinding(ActionGoBottom, KeyKindFull, "Navigation"),
		ActionBinding(ActionCopyPath, KeyKindFull, "Clipboard"),
		ActionBinding(ActionQuit, KeyKindFull, "System"),
	}
	if !m.List.Controller.Range().IsZero() {
		quick = append(quick, ActionBinding(ActionClearRange, KeyKindQuick, "Filter"))
	}
	if m.webURL != "" {
		quick = append(quick, ActionBinding(ActionOpenBrowser, KeyKindQuick, "View"))
	}
	return append(quick, full...)
}

func keymapRangeInput() []KeyBinding {
	return []KeyBinding{
		CombinedBinding([]string{"tab"}, "switch field", KeyKindQuick, "Filter"),
		ActionBindingWithLabel(ActionSelect, "apply", KeyKindQuick, "Filter"),
		ActionBindingWithLabel(ActionBack, "cancel", KeyKindQuick, "Filter"),
	}
}

func (m Model) keymapDetail() []KeyBinding {
	quick := []KeyBinding{
		ScrollBinding(KeyKindQuick),
		ActionBinding(ActionCopy, KeyKindQuick, "Clipboard"),
		ActionBinding(ActionCopyPath, KeyKindQuick, "Clipboard"),
		ActionBinding(ActionRefresh, KeyKindQuick, "View"),
		ActionBinding(ActionBack, KeyKindQuick, "Navigation"),
	}
	if m.webURL != "" {
		quick = append(quick, ActionBinding(ActionOpenBrowser, KeyKindQuick, "View"))
	}
	return quick
}

func keymapErrorModal() []KeyBinding {
	return []KeyBinding{
		ActionBinding(ActionCopy, KeyKindQuick, "Clipboard"),
		ScrollBinding(KeyKindQuick),
		ActionBindingWithLabel(ActionBack, "close", KeyKindQuick, "Navigation"),
	}
}
