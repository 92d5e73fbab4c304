// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines all keyboard bindings for the chat window. Printable keys
// always go to the input, so scrolling uses non-printing keys only.
type KeyMap struct {
	Submit   key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	CopyLast key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default key bindings for the chat window.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "send"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("PgUp", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("PgDn", "scroll down"),
		),
		Top: key.NewBinding(
			key.WithKeys("ctrl+home"),
			key.WithHelp("C-Home", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("ctrl+end"),
			key.WithHelp("C-End", "bottom"),
		),
		CopyLast: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("C-y", "copy reply"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("Esc", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.PageUp, k.PageDown, k.CopyLast, k.Quit}
}

// HelpLine renders ShortHelp as "key action · key action".
func (k KeyMap) HelpLine() string {
	parts := make([]string, 0, 5)
	for _, b := range k.ShortHelp() {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}
