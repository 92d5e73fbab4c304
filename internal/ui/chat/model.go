// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jeranaias/smartchat/internal/bot"
	"github.com/jeranaias/smartchat/internal/model"
	"github.com/jeranaias/smartchat/internal/ui/styles"
)

// =============================================================================
// OPTIONS
// =============================================================================

// Options configures a chat window.
type Options struct {
	Theme      *styles.Theme
	Handler    *bot.Handler
	Transcript *model.Transcript
	Scheduler  *ProgramScheduler

	Title           string
	BotName         string
	UserName        string
	TimestampFormat string

	// Greeting is appended as the first bot line when non-empty.
	Greeting string

	// Clipboard writes text to the system clipboard. Defaults to atotto/clipboard.
	Clipboard func(string) error

	Logger *zap.Logger
}

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat window.
type Model struct {
	theme      *styles.Theme
	handler    *bot.Handler
	transcript *model.Transcript
	scheduler  *ProgramScheduler
	logger     *zap.Logger

	title           string
	botName         string
	userName        string
	timestampFormat string
	clipboard       func(string) error

	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model
	keyMap   KeyMap

	width    int
	height   int
	ready    bool
	typing   bool
	notice   string
	failed   bool
	quitting bool
}

// New creates a chat window. The handler must append to opts.Transcript and
// schedule through opts.Scheduler.
func New(opts Options) Model {
	if opts.Theme == nil {
		opts.Theme = styles.NewTheme("dark")
	}
	if opts.Transcript == nil {
		opts.Transcript = model.NewTranscript()
	}
	if opts.Scheduler == nil {
		opts.Scheduler = NewProgramScheduler(nil)
	}
	if opts.Handler == nil {
		opts.Handler = bot.New(bot.Config{
			Transcript: opts.Transcript,
			Scheduler:  opts.Scheduler,
		})
	}
	if opts.Clipboard == nil {
		opts.Clipboard = writeClipboard
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.BotName == "" {
		opts.BotName = model.SpeakerBot.DisplayName()
	}
	if opts.UserName == "" {
		opts.UserName = model.SpeakerUser.DisplayName()
	}
	if opts.TimestampFormat == "" {
		opts.TimestampFormat = model.DefaultTimestampFormat
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = opts.Theme.InputPrompt
	ti.Placeholder = "Type a message and press Enter..."
	ti.CharLimit = 1024
	ti.Focus()

	vp := viewport.New(80, 20)

	sp := spinner.New(spinner.WithSpinner(styles.TypingSpinner))

	if opts.Greeting != "" {
		opts.Handler.Greet(opts.Greeting)
	}

	m := Model{
		theme:           opts.Theme,
		handler:         opts.Handler,
		transcript:      opts.Transcript,
		scheduler:       opts.Scheduler,
		logger:          opts.Logger,
		title:           opts.Title,
		botName:         opts.BotName,
		userName:        opts.UserName,
		timestampFormat: opts.TimestampFormat,
		clipboard:       opts.Clipboard,
		viewport:        vp,
		input:           ti,
		spinner:         sp,
		keyMap:          DefaultKeyMap(),
	}
	m.updateViewport()
	return m
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init starts the cursor blink and sets the terminal title.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.title != "" {
		cmds = append(cmds, tea.SetWindowTitle(m.title))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case RunMsg:
		msg.Run()
		m.updateViewport()
		return m, nil

	case spinner.TickMsg:
		if m.scheduler.Pending() == 0 {
			m.typing = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case copiedMsg:
		if msg.err != nil {
			m.logger.Debug("clipboard write failed", zap.Error(msg.err))
			m.notice = "Copy failed: " + msg.err.Error()
			m.failed = true
		} else {
			m.notice = "Copied last reply"
			m.failed = false
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the window.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderChat()
}

// =============================================================================
// MESSAGE HANDLERS
// =============================================================================

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	// header + pane border + input box (3 with border) + status bar
	const (
		headerHeight    = 1
		paneFrame       = 2
		inputAreaHeight = 3
		statusBarHeight = 1
	)

	viewportHeight := m.height - headerHeight - paneFrame - inputAreaHeight - statusBarHeight
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	viewportWidth := m.width - m.theme.Pane.GetHorizontalFrameSize()
	if viewportWidth < 1 {
		viewportWidth = 1
	}
	m.viewport.Width = viewportWidth
	m.viewport.Height = viewportHeight

	// input box frame, prompt, cursor and the send hint share the row
	inputWidth := m.width - m.theme.InputContainer.GetHorizontalFrameSize() -
		lipgloss.Width(m.input.Prompt) - 2 - lipgloss.Width(m.renderSendHint())
	if inputWidth < 10 {
		inputWidth = 10
	}
	m.input.Width = inputWidth

	m.theme.SetSize(m.width, m.height)
	m.ready = true
	m.updateViewport()
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Submit):
		return m.submit()

	case key.Matches(msg, m.keyMap.PageUp):
		m.viewport.ViewUp()
		return m, nil

	case key.Matches(msg, m.keyMap.PageDown):
		m.viewport.ViewDown()
		return m, nil

	case key.Matches(msg, m.keyMap.Top):
		m.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keyMap.Bottom):
		m.viewport.GotoBottom()
		return m, nil

	case key.Matches(msg, m.keyMap.CopyLast):
		last, ok := m.transcript.Last(model.SpeakerBot)
		if !ok {
			m.notice = "Nothing to copy yet"
			m.failed = false
			return m, nil
		}
		return m, copyCmd(m.clipboard, last.Text)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit sends the input line to the handler. Blank lines are ignored and
// leave the input as it was.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if _, ok := m.handler.Handle(m.input.Value()); !ok {
		return m, nil
	}
	m.input.Reset()
	m.notice = ""
	m.failed = false
	m.updateViewport()

	if m.typing {
		return m, nil
	}
	m.typing = true
	return m, m.spinner.Tick
}

// updateViewport re-renders the transcript and scrolls to the newest line.
func (m *Model) updateViewport() {
	m.viewport.SetContent(m.renderMessages())
	m.viewport.GotoBottom()
}
