// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line parsing and the line-oriented commands
// for smartchat.
//
// # Key Types
//
//   - Command: enumeration of the available commands
//   - Args: parsed global flags and command arguments
//   - Env: configuration, knowledge table and logger shared by every command
//
// # Usage
//
//	cmd, args := cli.Parse()
//	switch cmd {
//	case cli.CmdAsk:
//	    cli.HandleAsk(args)
//	case cli.CmdChat:
//	    cli.HandleChat(args)
//	}
//
// The full-screen window is started by package main; everything here prints
// to plain stdout and works when piped.
package cli
