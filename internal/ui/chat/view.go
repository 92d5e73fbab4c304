// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/smartchat/internal/model"
	"github.com/jeranaias/smartchat/internal/ui/styles"
	"github.com/jeranaias/smartchat/internal/util"
)

// =============================================================================
// LAYOUT
// =============================================================================

func (m Model) renderChat() string {
	if !m.ready {
		return "Starting..."
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.theme.Pane.Render(m.viewport.View()),
		m.renderInput(),
		m.renderStatusBar(),
	)
	return m.theme.App.Width(m.width).Render(body)
}

func (m Model) renderHeader() string {
	title := util.TruncateWidth(m.title, m.width-2)
	return m.theme.Header.Width(m.width).Render(m.theme.HeaderTitle.Render(title))
}

// sendLabel marks the send key next to the input.
const sendLabel = "Send ⏎"

func (m Model) renderSendHint() string {
	return m.theme.SendHint.Render(sendLabel)
}

func (m Model) renderInput() string {
	row := lipgloss.JoinHorizontal(lipgloss.Center, m.input.View(), " ", m.renderSendHint())
	border := m.theme.InputContainer.GetHorizontalBorderSize()
	return m.theme.InputContainer.Width(m.width - border).Render(row)
}

func (m Model) renderStatusBar() string {
	left := m.keyMap.HelpLine()
	if m.notice != "" {
		style := m.theme.Notice
		if m.failed {
			style = m.theme.ErrorText
		}
		left = style.Render(m.notice)
	}
	if m.typing && m.scheduler.Pending() > 0 {
		left = m.theme.Typing.Render(m.botName+" "+styles.TypingLabel+m.spinner.View()) + "  " + left
	}
	return m.theme.StatusBar.MaxWidth(m.width).Render(left)
}

// =============================================================================
// TRANSCRIPT
// =============================================================================

// renderMessages draws every entry as "[HH:MM] Name: text" followed by a
// blank line. Colour comes from the speaker.
func (m Model) renderMessages() string {
	entries := m.transcript.Entries()
	if len(entries) == 0 {
		return ""
	}

	narrow := m.theme.GetLayoutMode() == styles.LayoutNarrow
	width := m.viewport.Width

	var b strings.Builder
	for _, e := range entries {
		b.WriteString(m.renderEntry(e, narrow, width))
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderEntry(e model.Entry, narrow bool, width int) string {
	name := m.botName
	if e.IsUser() {
		name = m.userName
	}

	line := m.theme.SpeakerStyle(e.Speaker).Render(name + ": " + e.Text)
	if !narrow {
		stamp := m.theme.Timestamp.Render("[" + e.Timestamp.Format(m.timestampFormat) + "] ")
		line = stamp + line
	}
	if width > 0 {
		line = lipgloss.NewStyle().Width(width).Render(line)
	}
	return line
}
