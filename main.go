// smartchat - a small keyword chat bot for the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeranaias/smartchat/internal/cli"
	"github.com/jeranaias/smartchat/internal/logging"
	"github.com/jeranaias/smartchat/internal/model"
	"github.com/jeranaias/smartchat/internal/ui/chat"
	"github.com/jeranaias/smartchat/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdTUI:
		if err := runTUI(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(cli.GetExitCode(err))
		}
	case cli.CmdChat:
		cli.HandleChat(args)
	case cli.CmdAsk:
		cli.HandleAsk(args)
	case cli.CmdTopics:
		cli.HandleTopics(args)
	case cli.CmdConfig:
		cli.HandleConfig(args)
	case cli.CmdVersion:
		cli.HandleVersion()
	case cli.CmdHelp:
		cli.HandleHelp()
	default:
		cli.HandleHelp()
		os.Exit(cli.ExitUsageError)
	}
}

// runTUI starts the full-screen chat window. Logs go to the configured file
// only, since the window owns the terminal.
func runTUI(args cli.Args) error {
	if err := cli.RequiresTTY("open the chat window"); err != nil {
		return fmt.Errorf("%w (try 'smartchat chat' or 'smartchat ask')", err)
	}

	env, err := cli.NewEnv(args, logging.SinkDiscard)
	if err != nil {
		return err
	}
	defer env.Close()

	cfg := env.Config
	transcript := model.NewTranscript()
	scheduler := chat.NewProgramScheduler(nil)

	greeting := ""
	if cfg.UI.ShowGreeting {
		greeting = cfg.Greeting
	}

	m := chat.New(chat.Options{
		Theme:           styles.NewTheme(cfg.UI.Theme),
		Handler:         env.NewHandler(transcript, scheduler),
		Transcript:      transcript,
		Scheduler:       scheduler,
		Title:           cfg.UI.Title,
		BotName:         cfg.BotName,
		UserName:        cfg.UserName,
		TimestampFormat: cfg.UI.TimestampFormat,
		Greeting:        greeting,
		Logger:          env.Logger,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	scheduler.Attach(p.Send)

	env.Logger.Info("chat window started", zap.Int("topics", env.Knowledge.Len()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("chat window: %w", err)
	}
	env.Logger.Info("chat window closed", zap.Int("entries", transcript.Len()))
	return nil
}
