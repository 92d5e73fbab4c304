// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/smartchat/internal/bot"
	"github.com/jeranaias/smartchat/internal/config"
	"github.com/jeranaias/smartchat/internal/model"
	"github.com/jeranaias/smartchat/internal/schedule"
)

// LineReader reads one line of user input.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

// =============================================================================
// INPUT HISTORY
// =============================================================================

// ChatCLI provides line editing and input history for interactive chat.
type ChatCLI struct {
	line        *liner.State
	historyFile string
}

// NewChatCLI creates a ChatCLI and loads history from the config directory.
func NewChatCLI() *ChatCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	configDir, err := config.ConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}

	c := &ChatCLI{
		line:        line,
		historyFile: filepath.Join(configDir, "chat_history"),
	}
	c.LoadHistory()
	return c
}

// LoadHistory loads command history from file.
func (c *ChatCLI) LoadHistory() {
	if f, err := os.Open(c.historyFile); err == nil {
		_, _ = c.line.ReadHistory(f)
		f.Close()
	}
}

// Prompt reads a line with history navigation. Non-blank input is added to
// the history.
func (c *ChatCLI) Prompt(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// SaveHistory persists command history with owner-only permissions.
func (c *ChatCLI) SaveHistory() {
	if err := os.MkdirAll(filepath.Dir(c.historyFile), 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = c.line.WriteHistory(f)
}

// Close saves history and restores the terminal.
func (c *ChatCLI) Close() {
	c.SaveHistory()
	c.line.Close()
}

// plainReader reads lines from a non-terminal input without prompting.
type plainReader struct {
	scanner *bufio.Scanner
}

// NewLineReader reads newline separated input from r, for piped stdin.
func NewLineReader(r io.Reader) LineReader {
	return &plainReader{scanner: bufio.NewScanner(r)}
}

func (p *plainReader) Prompt(string) (string, error) {
	if p.scanner.Scan() {
		return p.scanner.Text(), nil
	}
	if err := p.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// =============================================================================
// CHAT LOOP
// =============================================================================

// chatPrompt is shown before every input line.
const chatPrompt = "> "

// RunChat runs a conversation until EOF, Ctrl+C, "/quit" or a reply to
// "bye". Each reply is printed before the next prompt.
func RunChat(w io.Writer, env *Env, in LineReader) error {
	_, interactive := in.(*ChatCLI)

	tr := model.NewTranscript()
	printer := newTranscriptPrinter(w, env, !interactive)
	tr.OnAppend(printer.Print)

	timer := schedule.NewTimer()
	h := env.NewHandler(tr, timer)

	if env.Config.UI.ShowGreeting && !env.Quiet {
		if interactive {
			fmt.Fprintln(w, TitleStyle.Render(env.Config.UI.Title))
		}
		h.Greet(env.Config.Greeting)
	}

	for {
		line, err := in.Prompt(chatPrompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			break
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "/quit", "/exit", "/q":
			return printer.Err()
		}

		reply, ok := h.HandleReply(line)
		if !ok {
			continue
		}
		timer.Wait()

		if isFarewell(reply) {
			env.Logger.Debug("conversation ended by farewell")
			break
		}
	}

	timer.Wait()
	return printer.Err()
}

// isFarewell reports whether reply answered the "bye" keyword.
func isFarewell(reply bot.Reply) bool {
	return reply.Kind == bot.KindKnowledge && reply.Keyword == "bye"
}
