// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging builds the zap loggers used across smartchat.
//
// The full-screen window owns the terminal, so it only logs to a file (or
// not at all). Line-oriented commands log to stderr.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jeranaias/smartchat/internal/config"
)

// Sink selects where log output goes when no file is configured.
type Sink int

const (
	// SinkStderr writes to standard error.
	SinkStderr Sink = iota
	// SinkDiscard drops output.
	SinkDiscard
)

// ParseLevel converts a config level string. Unknown values map to info.
func ParseLevel(s string) zapcore.Level {
	level := zapcore.InfoLevel
	if err := level.Set(strings.ToLower(strings.TrimSpace(s))); err != nil {
		return zapcore.InfoLevel
	}
	return level
}

// New builds a logger from cfg. cfg.File, when set, always wins over sink.
func New(cfg config.LogConfig, sink Sink) (*zap.Logger, error) {
	output := "stderr"
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		output = cfg.File
	} else if sink == SinkDiscard {
		return zap.NewNop(), nil
	}

	encoding := strings.ToLower(cfg.Encoding)
	if encoding == "" {
		encoding = "console"
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "time"
	encoderCfg.MessageKey = "msg"
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	if encoding == "console" {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
	}
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	zapCfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(ParseLevel(cfg.Level)),
		Encoding:          encoding,
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{output},
		ErrorOutputPaths:  []string{"stderr"},
		DisableCaller:     true,
		DisableStacktrace: true,
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.Named("smartchat"), nil
}

// Must is like New but falls back to a no-op logger on error after
// reporting it on stderr.
func Must(cfg config.LogConfig, sink Sink) *zap.Logger {
	logger, err := New(cfg, sink)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (logging disabled)\n", err)
		return zap.NewNop()
	}
	return logger
}
