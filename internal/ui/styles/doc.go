// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the smartchat window.

# Palettes (colors.go)

Two fixed palettes, dark and light. The dark palette is the default:

	Background #121212  window
	Pane       #1E1E1E  transcript
	InputBg    #282828  input field
	Accent     #007AFF  send key hint, focus
	User       #0099FF  user lines
	Bot        #C8C8C8  bot lines

The "auto" theme asks termenv whether the terminal background is dark.

# Theme (theme.go)

Theme bundles the lipgloss styles the chat view renders with. The colour of
a transcript line is chosen from its speaker:

	theme := styles.NewTheme("dark")
	line := theme.SpeakerStyle(entry.Speaker).Render(entry.Text)

# Typing indicator (typing.go)

TypingSpinner is the bubbles spinner shown while replies are pending.
*/
package styles
