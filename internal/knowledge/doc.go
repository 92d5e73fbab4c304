// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package knowledge holds the ordered keyword-to-response table the bot
// answers from.
//
// Lookup is first-match-wins in insertion order: the first keyword that is a
// substring of the lower-cased input wins. A Table never changes after
// construction.
//
// Tables come from Default (the built-in topics) or LoadFile, which reads a
// TOML document of ordered [[entry]] tables:
//
//	[[entry]]
//	keyword  = "go"
//	response = "Go is a statically typed, compiled language."
package knowledge
