// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette is the set of colours one theme is built from.
type Palette struct {
	Name string

	Background lipgloss.Color
	Pane       lipgloss.Color
	InputBg    lipgloss.Color
	Border     lipgloss.Color
	Accent     lipgloss.Color

	User  lipgloss.Color
	Bot   lipgloss.Color
	Text  lipgloss.Color
	Muted lipgloss.Color
	Error lipgloss.Color
}

// =============================================================================
// PALETTES
// =============================================================================

// Dark is the default palette.
var Dark = Palette{
	Name:       "dark",
	Background: lipgloss.Color("#121212"),
	Pane:       lipgloss.Color("#1E1E1E"),
	InputBg:    lipgloss.Color("#282828"),
	Border:     lipgloss.Color("#3A3A3A"),
	Accent:     lipgloss.Color("#007AFF"),
	User:       lipgloss.Color("#0099FF"),
	Bot:        lipgloss.Color("#C8C8C8"),
	Text:       lipgloss.Color("#FFFFFF"),
	Muted:      lipgloss.Color("#7A7A7A"),
	Error:      lipgloss.Color("#FB7185"),
}

// Light keeps the same roles on a pale background.
var Light = Palette{
	Name:       "light",
	Background: lipgloss.Color("#FAFAFA"),
	Pane:       lipgloss.Color("#FFFFFF"),
	InputBg:    lipgloss.Color("#F0F0F0"),
	Border:     lipgloss.Color("#D4D4D4"),
	Accent:     lipgloss.Color("#007AFF"),
	User:       lipgloss.Color("#0066CC"),
	Bot:        lipgloss.Color("#3C3C3C"),
	Text:       lipgloss.Color("#1F2937"),
	Muted:      lipgloss.Color("#9CA3AF"),
	Error:      lipgloss.Color("#E11D48"),
}

// PaletteFor resolves a theme name. "auto" and unknown names consult the
// terminal background; an empty name means dark.
func PaletteFor(name string) Palette {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "dark":
		return Dark
	case "light":
		return Light
	default:
		if termenv.HasDarkBackground() {
			return Dark
		}
		return Light
	}
}
