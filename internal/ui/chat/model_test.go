// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/smartchat/internal/bot"
	"github.com/jeranaias/smartchat/internal/model"
	"github.com/jeranaias/smartchat/internal/schedule"
	"github.com/jeranaias/smartchat/internal/ui/styles"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

type harness struct {
	m      Model
	tr     *model.Transcript
	sched  *ProgramScheduler
	manual *schedule.Manual
	sent   []tea.Msg
	copied []string
}

func newHarness(t *testing.T, greeting string) *harness {
	t.Helper()
	h := &harness{
		tr:     model.NewTranscript(),
		manual: schedule.NewManual(),
	}
	h.sched = NewProgramScheduler(h.manual)
	h.sched.Attach(func(msg tea.Msg) { h.sent = append(h.sent, msg) })

	handler := bot.New(bot.Config{
		Transcript: h.tr,
		Scheduler:  h.sched,
		Delay:      500 * time.Millisecond,
		Now:        func() time.Time { return time.Date(2025, 1, 2, 21, 7, 0, 0, time.UTC) },
	})
	h.m = New(Options{
		Theme:      styles.NewTheme("dark"),
		Handler:    handler,
		Transcript: h.tr,
		Scheduler:  h.sched,
		Title:      "🧠 Smart AI ChatBot (Dark Mode)",
		Greeting:   greeting,
		Clipboard: func(s string) error {
			h.copied = append(h.copied, s)
			return nil
		},
	})
	h.update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return h
}

func (h *harness) update(msg tea.Msg) tea.Cmd {
	next, cmd := h.m.Update(msg)
	h.m = next.(Model)
	return cmd
}

func (h *harness) typeText(s string) {
	h.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func (h *harness) deliver() {
	msgs := h.sent
	h.sent = nil
	for _, msg := range msgs {
		h.update(msg)
	}
}

// =============================================================================
// TESTS
// =============================================================================

func TestNew_Greeting(t *testing.T) {
	h := newHarness(t, "Hello! Type 'help'.")
	require.Equal(t, 1, h.tr.Len())
	assert.Equal(t, model.SpeakerBot, h.tr.Entries()[0].Speaker)
	assert.Contains(t, h.m.View(), "Bot: Hello! Type 'help'.")

	h2 := newHarness(t, "")
	assert.Equal(t, 0, h2.tr.Len())
}

func TestView_BeforeResize(t *testing.T) {
	m := New(Options{})
	assert.Equal(t, "Starting...", m.View())
}

func TestSubmit_UserNowBotAfterDelay(t *testing.T) {
	h := newHarness(t, "")

	h.typeText("Tell me about Python")
	cmd := h.update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd, "first pending reply starts the typing indicator")

	entries := h.tr.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "Tell me about Python", entries[0].Text)
	assert.Empty(t, h.m.input.Value(), "input is cleared after sending")
	assert.Equal(t, 1, h.sched.Pending())
	assert.Contains(t, h.m.View(), "is typing")

	h.manual.Advance(500 * time.Millisecond)
	require.Len(t, h.sent, 1)
	assert.Equal(t, 1, h.tr.Len(), "bot entry waits for Update")

	h.deliver()
	entries = h.tr.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, model.SpeakerBot, entries[1].Speaker)
	assert.True(t, strings.HasPrefix(entries[1].Text, "Python is"))
	assert.Equal(t, 0, h.sched.Pending())

	view := h.m.View()
	assert.Contains(t, view, "[21:07] You: Tell me about Python")
	assert.NotContains(t, view, "is typing")
}

func TestSubmit_BlankIsIgnored(t *testing.T) {
	h := newHarness(t, "")
	h.typeText("   ")
	cmd := h.update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, h.tr.Len())
	assert.Equal(t, 0, h.sched.Pending())
}

func TestSubmit_MultiplePendingReplies(t *testing.T) {
	h := newHarness(t, "")

	h.typeText("hello")
	h.update(tea.KeyMsg{Type: tea.KeyEnter})
	h.manual.Advance(100 * time.Millisecond)
	h.typeText("bye")
	cmd := h.update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd, "typing indicator is already running")
	assert.Equal(t, 2, h.sched.Pending())

	h.manual.Advance(time.Second)
	h.deliver()

	var texts []string
	for _, e := range h.tr.Entries() {
		texts = append(texts, e.Speaker.String())
	}
	assert.Equal(t, []string{"user", "user", "bot", "bot"}, texts)
}

func TestSpinnerStopsWhenIdle(t *testing.T) {
	h := newHarness(t, "")
	h.m.typing = true
	cmd := h.update(spinner.TickMsg{})
	assert.Nil(t, cmd)
	assert.False(t, h.m.typing)
}

func TestCopyLastReply(t *testing.T) {
	h := newHarness(t, "")

	cmd := h.update(tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.Nil(t, cmd)
	assert.Equal(t, "Nothing to copy yet", h.m.notice)

	h.typeText("bye")
	h.update(tea.KeyMsg{Type: tea.KeyEnter})
	h.manual.Advance(time.Second)
	h.deliver()

	cmd = h.update(tea.KeyMsg{Type: tea.KeyCtrlY})
	require.NotNil(t, cmd)
	h.update(cmd())
	require.Len(t, h.copied, 1)
	assert.Contains(t, h.copied[0], "Goodbye")
	assert.Equal(t, "Copied last reply", h.m.notice)

	h.update(copiedMsg{err: errors.New("no clipboard")})
	assert.Equal(t, "Copy failed: no clipboard", h.m.notice)
	assert.True(t, h.m.failed)
	assert.Contains(t, h.m.View(), "Copy failed: no clipboard")
}

func TestView_DarkThemeChrome(t *testing.T) {
	h := newHarness(t, "Hi")
	view := h.m.View()

	assert.Contains(t, view, "🧠 Smart AI ChatBot (Dark Mode)")
	assert.Contains(t, view, sendLabel)
	assert.Contains(t, view, "╭", "transcript pane has a rounded border")
	assert.Equal(t, h.m.theme.InputPrompt.GetForeground(), h.m.input.PromptStyle.GetForeground())
	assert.Equal(t, styles.Dark.Background, h.m.theme.App.GetBackground())
	assert.Equal(t, styles.Dark.Pane, h.m.theme.Pane.GetBackground())
	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 100, "line %q", line)
	}
}

func TestQuit(t *testing.T) {
	h := newHarness(t, "")
	cmd := h.update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, h.m.View())
}

func TestResize_NarrowHidesTimestamps(t *testing.T) {
	h := newHarness(t, "Hi")
	assert.Contains(t, h.m.View(), "[21:07]")

	h.update(tea.WindowSizeMsg{Width: 40, Height: 20})
	assert.NotContains(t, h.m.View(), "[21:07]")
	assert.Equal(t, 36, h.m.viewport.Width, "pane border and padding take four columns")
	assert.Equal(t, 13, h.m.viewport.Height)
}

func TestInit(t *testing.T) {
	h := newHarness(t, "")
	assert.NotNil(t, h.m.Init())
}

// =============================================================================
// SCHEDULER TESTS
// =============================================================================

func TestProgramScheduler_UnattachedRunsInline(t *testing.T) {
	s := NewProgramScheduler(schedule.Immediate{})
	ran := false
	s.Schedule(time.Second, func() { ran = true })
	assert.True(t, ran)
	assert.Equal(t, 0, s.Pending())
	s.Schedule(0, nil)
	assert.Equal(t, 0, s.Pending())
}

func TestProgramScheduler_AttachedSendsRunMsg(t *testing.T) {
	s := NewProgramScheduler(schedule.Immediate{})
	var got []tea.Msg
	s.Attach(func(msg tea.Msg) { got = append(got, msg) })

	ran := false
	s.Schedule(time.Second, func() { ran = true })
	require.Len(t, got, 1)
	assert.False(t, ran)
	assert.Equal(t, 1, s.Pending())

	got[0].(RunMsg).Run()
	assert.True(t, ran)
	assert.Equal(t, 0, s.Pending())
}

func TestKeyMap_HelpLine(t *testing.T) {
	line := DefaultKeyMap().HelpLine()
	assert.Contains(t, line, "Enter send")
	assert.Contains(t, line, "C-y copy reply")
	assert.Contains(t, line, "Esc quit")
}
