// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package schedule runs deferred callbacks.
//
// The bot never sleeps. It hands each pending reply to a Scheduler, which
// decides when and on which goroutine the callback runs:
//
//   - Timer: real wall-clock delay on a timer goroutine
//   - Immediate: runs the callback synchronously
//   - Manual: virtual clock advanced by tests
//
// Callbacks are independent. Nothing is coalesced or cancelled, and due
// callbacks fire in expiry order.
package schedule

import (
	"sync"
	"time"
)

// Scheduler runs fn once after delay.
type Scheduler interface {
	Schedule(delay time.Duration, fn func())
}

// Func adapts an ordinary function to the Scheduler interface.
type Func func(delay time.Duration, fn func())

// Schedule calls f(delay, fn).
func (f Func) Schedule(delay time.Duration, fn func()) {
	f(delay, fn)
}

// =============================================================================
// TIMER SCHEDULER
// =============================================================================

// Timer schedules callbacks with time.AfterFunc. The zero value is ready to use.
type Timer struct {
	wg sync.WaitGroup
}

// NewTimer creates a timer-backed scheduler.
func NewTimer() *Timer {
	return &Timer{}
}

// Schedule runs fn on its own goroutine after delay.
func (t *Timer) Schedule(delay time.Duration, fn func()) {
	if fn == nil {
		return
	}
	t.wg.Add(1)
	time.AfterFunc(delay, func() {
		defer t.wg.Done()
		fn()
	})
}

// Wait blocks until every scheduled callback has returned.
func (t *Timer) Wait() {
	t.wg.Wait()
}

// =============================================================================
// IMMEDIATE SCHEDULER
// =============================================================================

// Immediate ignores the delay and runs fn before Schedule returns.
type Immediate struct{}

// Schedule runs fn synchronously.
func (Immediate) Schedule(_ time.Duration, fn func()) {
	if fn != nil {
		fn()
	}
}
