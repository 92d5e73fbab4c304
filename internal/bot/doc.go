// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package bot turns one line of user text into one bot reply.
//
// Dispatch is fixed priority, first match wins:
//
//  1. "search <query>" simulates a web lookup
//  2. any mention of "time" reports the wall clock
//  3. the first knowledge keyword contained in the input
//  4. a fixed fallback
//
// Handle records the user's line at once and hands the bot's line to a
// scheduler so it appears after the typing delay. Transcript failures are
// logged and otherwise ignored; every non-empty input gets a reply.
package bot
