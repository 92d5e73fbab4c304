// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/smartchat/internal/model"
)

// Theme holds all the styled components for the chat window.
type Theme struct {
	Palette      Palette
	IsDark       bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// CONTAINER STYLES
	// ==========================================================================

	App  lipgloss.Style
	Pane lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header      lipgloss.Style
	HeaderTitle lipgloss.Style

	// ==========================================================================
	// TRANSCRIPT STYLES
	// ==========================================================================

	Timestamp lipgloss.Style
	UserLine  lipgloss.Style
	BotLine   lipgloss.Style
	Typing    lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer lipgloss.Style
	InputPrompt    lipgloss.Style
	SendHint       lipgloss.Style

	// ==========================================================================
	// STATUS STYLES
	// ==========================================================================

	StatusBar lipgloss.Style
	Notice    lipgloss.Style
	ErrorText lipgloss.Style
}

// NewTheme creates a theme for the named palette (dark, light or auto).
func NewTheme(name string) *Theme {
	p := PaletteFor(name)
	t := &Theme{
		Palette:      p,
		IsDark:       p.Name == Dark.Name,
		ColorProfile: termenv.ColorProfile(),
	}
	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	p := t.Palette

	t.App = lipgloss.NewStyle().Background(p.Background)
	t.Pane = lipgloss.NewStyle().
		Background(p.Pane).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)

	t.Header = lipgloss.NewStyle().
		Background(p.Background).
		Padding(0, 1)
	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text)

	t.Timestamp = lipgloss.NewStyle().Foreground(p.Muted)
	t.UserLine = lipgloss.NewStyle().Foreground(p.User)
	t.BotLine = lipgloss.NewStyle().Foreground(p.Bot)
	t.Typing = lipgloss.NewStyle().Foreground(p.Muted).Italic(true)

	t.InputContainer = lipgloss.NewStyle().
		Background(p.InputBg).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(p.Accent).
		Padding(0, 1)
	t.InputPrompt = lipgloss.NewStyle().Foreground(p.Accent).Bold(true)
	t.SendHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(p.Accent).
		Padding(0, 1)

	t.StatusBar = lipgloss.NewStyle().Foreground(p.Muted).Padding(0, 1)
	t.Notice = lipgloss.NewStyle().Foreground(p.Accent)
	t.ErrorText = lipgloss.NewStyle().Foreground(p.Error)
}

// SpeakerStyle returns the style for lines from speaker.
func (t *Theme) SpeakerStyle(s model.Speaker) lipgloss.Style {
	if s == model.SpeakerUser {
		return t.UserLine
	}
	return t.BotLine
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // >= 100 columns
)
