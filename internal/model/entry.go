// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// SPEAKER TYPE
// =============================================================================

// Speaker identifies who produced a transcript entry.
type Speaker string

const (
	SpeakerUser Speaker = "user"
	SpeakerBot  Speaker = "bot"
)

// String returns the string representation of the speaker.
func (s Speaker) String() string {
	return string(s)
}

// DisplayName returns the label printed in front of a transcript line.
func (s Speaker) DisplayName() string {
	switch s {
	case SpeakerUser:
		return "You"
	case SpeakerBot:
		return "Bot"
	default:
		return string(s)
	}
}

// =============================================================================
// ENTRY TYPE
// =============================================================================

// DefaultTimestampFormat is the 24h hours:minutes prefix used on transcript lines.
const DefaultTimestampFormat = "15:04"

// Entry is a single line of the transcript.
type Entry struct {
	ID        string    `json:"id"`
	Speaker   Speaker   `json:"speaker"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// NewEntry creates an entry with a fresh ID.
func NewEntry(speaker Speaker, text string, at time.Time) Entry {
	return Entry{
		ID:        uuid.NewString(),
		Speaker:   speaker,
		Text:      text,
		Timestamp: at,
	}
}

// IsUser reports whether the entry was typed by the user.
func (e Entry) IsUser() bool {
	return e.Speaker == SpeakerUser
}

// Line renders the entry as "[HH:MM] Speaker: text". An empty layout uses
// DefaultTimestampFormat.
func (e Entry) Line(layout string) string {
	if layout == "" {
		layout = DefaultTimestampFormat
	}
	return fmt.Sprintf("[%s] %s: %s", e.Timestamp.Format(layout), e.Speaker.DisplayName(), e.Text)
}
