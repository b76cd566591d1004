// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package tui

// Action represents a user action that can be triggered by one or more keys
type Action int

const (
	ActionNone Action = iota

	// Navigation - list/cursor movement
	ActionScrollUp
	ActionScrollDown
	ActionPageUp
	ActionPageDown
	ActionGoTop
	ActionGoBottom

	// Common actions
	ActionSelect      // enter - open trace detail
	ActionBack        // esc, backspace - go back/close
	ActionQuit        // q - quit app
	ActionHelp        // ? - show help overlay
	ActionRefresh     // r - restart the session
	ActionRange       // t - edit the date range
	ActionClearRange  // x - drop the date range
	ActionCopy        // y - copy trace id
	ActionCopyPath    // Y - copy /transactions/<traceId>
	ActionOpenBrowser // o - open detail in the web dashboard
)

// DefaultKeyBindings maps keys to their primary action.
var DefaultKeyBindings = map[string]Action{
	// Navigation - includes vim keys (j/k) for list scrolling
	"up":     ActionScrollUp,
	"k":      ActionScrollUp,
	"down":   ActionScrollDown,
	"j":      ActionScrollDown,
	"pgup":   ActionPageUp,
	"pgdown": ActionPageDown,
	"home":   ActionGoTop,
	"g":      ActionGoTop,
	"end":    ActionGoBottom,
	"G":      ActionGoBottom,

	// Common actions
	"enter":     ActionSelect,
	"esc":       ActionBack,
	"backspace": ActionBack,
	"q":         ActionQuit,
	"?":         ActionHelp,
	"r":         ActionRefresh,
	"t":         ActionRange,
	"/":         ActionRange,
	"x":         ActionClearRange,
	"y":         ActionCopy,
	"Y":         ActionCopyPath,
	"o":         ActionOpenBrowser,
}

// GetAction returns the action for a key from the default bindings.
// Returns ActionNone if the key is not bound.
func GetAction(key string) Action {
	if action, ok := DefaultKeyBindings[key]; ok {
		return action
	}
	return ActionNone
}

// IsListNavAction returns true if the action is for list navigation (up/down/page/home/end)
func IsListNavAction(action Action) bool {
	return action >= ActionScrollUp && action <= ActionGoBottom
}

// ActionInfo provides display information for an action
type ActionInfo struct {
	DisplayKeys []string // Keys to show in help bar (e.g., ["↑", "↓"])
	Label       string   // Label for the action (e.g., "scroll")
}

// ActionDisplay maps actions to their display information
var ActionDisplay = map[Action]ActionInfo{
	ActionScrollUp:    {DisplayKeys: []string{"↑"}, Label: "up"},
	ActionScrollDown:  {DisplayKeys: []string{"↓"}, Label: "down"},
	ActionPageUp:      {DisplayKeys: []string{"pgup"}, Label: "page up"},
	ActionPageDown:    {DisplayKeys: []string{"pgdown"}, Label: "page down"},
	ActionGoTop:       {DisplayKeys: []string{"g"}, Label: "top"},
	ActionGoBottom:    {DisplayKeys: []string{"G"}, Label: "bottom"},
	ActionSelect:      {DisplayKeys: []string{"enter"}, Label: "select"},
	ActionBack:        {DisplayKeys: []string{"esc"}, Label: "back"},
	ActionQuit:        {DisplayKeys: []string{"q"}, Label: "quit"},
	ActionHelp:        {DisplayKeys: []string{"?"}, Label: "help"},
	ActionRefresh:     {DisplayKeys: []string{"r"}, Label: "refresh"},
	ActionRange:       {DisplayKeys: []string{"t"}, Label: "range"},
	ActionClearRange:  {DisplayKeys: []string{"x"}, Label: "clear range"},
	ActionCopy:        {DisplayKeys: []string{"y"}, Label: "copy"},
	ActionCopyPath:    {DisplayKeys: []string{"Y"}, Label: "copy path"},
	ActionOpenBrowser: {DisplayKeys: []string{"o"}, Label: "open in browser"},
}

// ScrollDisplayKeys returns the combined display for scroll up/down
var ScrollDisplayKeys = []string{"↑", "↓"}

// ActionBinding creates a KeyBinding from an action
func ActionBinding(action Action, kind KeyKind, group string) KeyBinding {
	info := ActionDisplay[action]
	return KeyBinding{
		Keys:  info.DisplayKeys,
		Label: info.Label,
		Kind:  kind,
		Group: group,
	}
}

// ActionBindingWithLabel creates a KeyBinding from an action with a custom label
func ActionBindingWithLabel(action Action, label string, kind KeyKind, group string) KeyBinding {
	b := ActionBinding(action, kind, group)
	b.Label = label
	return b
}

// CombinedBinding creates a KeyBinding from multiple keys with a custom label
func CombinedBinding(keys []string, label string, kind KeyKind, group string) KeyBinding {
	return KeyBinding{
		Keys:  keys,
		Label: label,
		Kind:  kind,
		Group: group,
	}
}

// ScrollBinding returns a standard scroll up/down binding
func ScrollBinding(kind KeyKind) KeyBinding {
	return CombinedBinding(ScrollDisplayKeys, "scroll", kind, "Navigation")
}
