// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"sync"
)

// MaxEntries bounds the in-memory transcript. Older entries are dropped from
// the front once the limit is reached so a long session cannot grow forever.
const MaxEntries = 1000

// =============================================================================
// TRANSCRIPT TYPE
// =============================================================================

// Transcript is an append-only list of entries. It is safe for concurrent use;
// timer callbacks append from their own goroutines.
type Transcript struct {
	mu       sync.RWMutex
	entries  []Entry
	dropped  int
	onAppend []func(Entry)
}

// NewTranscript creates an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{
		entries: make([]Entry, 0, 32),
	}
}

// Append adds an entry to the end of the transcript and notifies listeners.
// It never fails; the error return lets renderers that can fail share the
// same interface.
func (t *Transcript) Append(e Entry) error {
	t.mu.Lock()
	t.entries = append(t.entries, e)
	if len(t.entries) > MaxEntries {
		excess := len(t.entries) - MaxEntries
		t.entries = append(t.entries[:0:0], t.entries[excess:]...)
		t.dropped += excess
	}
	listeners := t.onAppend
	t.mu.Unlock()

	for _, fn := range listeners {
		fn(e)
	}
	return nil
}

// OnAppend registers fn to be called after every append. Listeners run on the
// appending goroutine.
func (t *Transcript) OnAppend(fn func(Entry)) {
	if fn == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onAppend = append(t.onAppend[:len(t.onAppend):len(t.onAppend)], fn)
}

// Entries returns a copy of the retained entries in append order.
func (t *Transcript) Entries() []Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of retained entries.
func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Dropped returns how many entries were discarded to honour MaxEntries.
func (t *Transcript) Dropped() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.dropped
}

// Last returns the most recent entry from speaker.
func (t *Transcript) Last(speaker Speaker) (Entry, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for i := len(t.entries) - 1; i >= 0; i-- {
		if t.entries[i].Speaker == speaker {
			return t.entries[i], true
		}
	}
	return Entry{}, false
}
