// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by the smartchat front ends.
//
// String Utilities:
//   - TruncateRunes: UTF-8 safe truncation with ellipsis
//   - TruncateWidth: terminal-column aware truncation (go-runewidth)
//   - FirstLine: single-line preview of multi-line replies
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync, used when the
//     default config file is generated
package util
