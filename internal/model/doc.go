// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for chat transcripts.
//
// # Key Types
//
//   - Speaker: who produced a line (user or bot)
//   - Entry: one timestamped transcript line, never mutated after creation
//   - Transcript: append-only, concurrency-safe list of entries
//
// # Usage
//
//	t := model.NewTranscript()
//	_ = t.Append(model.NewEntry(model.SpeakerUser, "hello", time.Now()))
//	for _, e := range t.Entries() {
//	    fmt.Println(e.Line("15:04"))
//	}
package model
