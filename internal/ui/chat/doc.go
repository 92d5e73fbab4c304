// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the full-screen chat window.
//
// The window is a Bubble Tea model with a transcript viewport, a single line
// text input and a status bar. Pressing Enter hands the line to a
// bot.Handler, which appends the user entry straight away and schedules the
// bot entry through a ProgramScheduler. The scheduler turns each due
// callback into a RunMsg so the bot entry is appended inside Update, on the
// same goroutine that renders.
//
// # Key Bindings
//
//   - Enter: send
//   - PgUp/PgDn: scroll the transcript
//   - Ctrl+Y: copy the last bot reply
//   - Esc/Ctrl+C: quit
package chat
