// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package schedule

import (
	"sort"
	"sync"
	"time"
)

type pending struct {
	due time.Duration
	seq int
	fn  func()
}

// Manual is a scheduler driven by a virtual clock. Nothing runs until
// Advance moves the clock past a callback's due time.
type Manual struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	queue []pending
}

// NewManual creates a manual scheduler at virtual time zero.
func NewManual() *Manual {
	return &Manual{}
}

// Schedule queues fn to run when the clock reaches now+delay.
func (m *Manual) Schedule(delay time.Duration, fn func()) {
	if fn == nil {
		return
	}
	if delay < 0 {
		delay = 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	m.queue = append(m.queue, pending{due: m.now + delay, seq: m.seq, fn: fn})
}

// Advance moves the virtual clock forward by d and runs every callback that
// became due, in due order. Callbacks with equal due times run in the order
// they were scheduled. Callbacks run without the lock held and may schedule
// more work; anything that falls due within the same advance also runs.
// It returns the number of callbacks run.
func (m *Manual) Advance(d time.Duration) int {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	ran := 0
	for {
		m.mu.Lock()
		next, ok := m.popDueLocked(target)
		if !ok {
			m.now = target
			m.mu.Unlock()
			return ran
		}
		m.now = next.due
		m.mu.Unlock()

		next.fn()
		ran++
	}
}

// Pending returns the number of callbacks that have not run yet.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue)
}

// Now returns the virtual time elapsed since creation.
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Manual) popDueLocked(target time.Duration) (pending, bool) {
	if len(m.queue) == 0 {
		return pending{}, false
	}
	sort.SliceStable(m.queue, func(i, j int) bool {
		if m.queue[i].due != m.queue[j].due {
			return m.queue[i].due < m.queue[j].due
		}
		return m.queue[i].seq < m.queue[j].seq
	})
	if m.queue[0].due > target {
		return pending{}, false
	}
	next := m.queue[0]
	m.queue = m.queue[1:]
	return next, true
}
