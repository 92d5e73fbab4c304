// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for smartchat.
//
// Supports both TOML and JSON configuration formats, with defaults,
// environment variable overrides, and validation.
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Command line flags (applied by the cli package)
//   - Environment variables (SMARTCHAT_*)
//   - ~/.smartchat/config.toml
//   - ~/.smartchat/config.json
//   - Built-in defaults
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	delay := cfg.TypingDelay()
package config
