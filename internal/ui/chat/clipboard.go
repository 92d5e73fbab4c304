// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

type copiedMsg struct {
	err error
}

func writeClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// copyCmd writes text off the UI goroutine; some clipboard helpers shell out.
func copyCmd(write func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: write(text)}
	}
}
