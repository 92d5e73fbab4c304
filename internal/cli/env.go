// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jeranaias/smartchat/internal/bot"
	"github.com/jeranaias/smartchat/internal/config"
	"github.com/jeranaias/smartchat/internal/knowledge"
	"github.com/jeranaias/smartchat/internal/logging"
	"github.com/jeranaias/smartchat/internal/schedule"
)

// SinkForLineMode sends logs to stderr when no log file is configured.
const SinkForLineMode = logging.SinkStderr

// Env is everything a command needs once flags, config and the knowledge
// table have been resolved.
type Env struct {
	Config    *config.Config
	Knowledge *knowledge.Table
	Logger    *zap.Logger
	Quiet     bool
}

// LoadConfig loads the config file named by --config (or the default
// location) and applies command line overrides on top.
func LoadConfig(args Args) (*config.Config, error) {
	if len(args.Errors) > 0 {
		return nil, &UsageError{Message: strings.Join(args.Errors, "; ")}
	}

	var (
		cfg *config.Config
		err error
	)
	if args.ConfigPath != "" {
		cfg, err = config.LoadFromPath(args.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if args.KnowledgePath != "" {
		cfg.KnowledgeFile = args.KnowledgePath
	}
	if args.DelaySet {
		cfg.TypingDelayMs = args.DelayMs
	}
	if args.Verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}

	return cfg, nil
}

// LoadKnowledge returns the table named by cfg.KnowledgeFile, or the
// built-in table when none is set.
func LoadKnowledge(cfg *config.Config) (*knowledge.Table, error) {
	if cfg.KnowledgeFile == "" {
		return knowledge.Default(), nil
	}
	return knowledge.LoadFile(cfg.KnowledgeFile)
}

// NewEnv resolves config, knowledge and logging for a command.
func NewEnv(args Args, sink logging.Sink) (*Env, error) {
	cfg, err := LoadConfig(args)
	if err != nil {
		return nil, err
	}
	table, err := LoadKnowledge(cfg)
	if err != nil {
		return nil, err
	}
	if args.NoColor {
		DisableColors()
	}
	logger := logging.Must(cfg.Log, sink)
	logger.Debug("environment ready",
		zap.Int("topics", table.Len()),
		zap.Duration("typing_delay", cfg.TypingDelay()),
		zap.String("knowledge_file", cfg.KnowledgeFile),
	)
	return &Env{
		Config:    cfg,
		Knowledge: table,
		Logger:    logger,
		Quiet:     args.Quiet,
	}, nil
}

// Close flushes the logger.
func (e *Env) Close() {
	_ = e.Logger.Sync()
}

// NewHandler builds a bot handler over this environment.
func (e *Env) NewHandler(tr bot.Appender, s schedule.Scheduler) *bot.Handler {
	return bot.New(bot.Config{
		Knowledge:  e.Knowledge,
		Transcript: tr,
		Scheduler:  s,
		Delay:      e.Config.TypingDelay(),
		Logger:     e.Logger,
	})
}

func withEnv(args Args, sink logging.Sink, fn func(*Env) error) error {
	env, err := NewEnv(args, sink)
	if err != nil {
		return err
	}
	defer env.Close()
	return fn(env)
}
