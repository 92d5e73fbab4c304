// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/smartchat/internal/model"
	"github.com/jeranaias/smartchat/internal/ui/styles"
)

// init configures lipgloss for the detected terminal.
func init() {
	lipgloss.SetColorProfile(GetColorProfile())
}

// =============================================================================
// SHARED STYLES FOR ALL CLI COMMANDS
// =============================================================================

var (
	// TitleStyle is used for command titles and headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Dark.Accent)

	// KeywordStyle highlights topic keywords
	KeywordStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Dark.User)

	// DimStyle is used for timestamps and hints
	DimStyle = lipgloss.NewStyle().
			Foreground(styles.Dark.Muted)

	// UserStyle colours user lines
	UserStyle = lipgloss.NewStyle().Foreground(styles.Dark.User)

	// BotStyle colours bot lines
	BotStyle = lipgloss.NewStyle().Foreground(styles.Dark.Bot)

	// ErrorStyle is used for error prefixes
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Dark.Error)
)

// speakerStyle returns the line style for s.
func speakerStyle(s model.Speaker) lipgloss.Style {
	if s == model.SpeakerUser {
		return UserStyle
	}
	return BotStyle
}
