// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/smartchat/internal/schedule"
)

// RunMsg carries a due callback into Update.
type RunMsg struct {
	fn    func()
	owner *ProgramScheduler
}

// Run executes the callback and marks it finished.
func (m RunMsg) Run() {
	if m.owner != nil {
		defer m.owner.pending.Add(-1)
	}
	if m.fn != nil {
		m.fn()
	}
}

// ProgramScheduler waits out each delay with an inner scheduler, then sends
// the callback to the Bubble Tea program as a RunMsg. Until a program is
// attached, due callbacks run on the timer goroutine.
type ProgramScheduler struct {
	inner   schedule.Scheduler
	mu      sync.Mutex
	send    func(tea.Msg)
	pending atomic.Int64
}

// NewProgramScheduler wraps inner, which defaults to a timer scheduler.
func NewProgramScheduler(inner schedule.Scheduler) *ProgramScheduler {
	if inner == nil {
		inner = schedule.NewTimer()
	}
	return &ProgramScheduler{inner: inner}
}

// Attach sets the function used to deliver messages, normally
// (*tea.Program).Send.
func (s *ProgramScheduler) Attach(send func(tea.Msg)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.send = send
}

// Schedule implements schedule.Scheduler.
func (s *ProgramScheduler) Schedule(delay time.Duration, fn func()) {
	if fn == nil {
		return
	}
	s.pending.Add(1)
	s.inner.Schedule(delay, func() {
		msg := RunMsg{fn: fn, owner: s}
		s.mu.Lock()
		send := s.send
		s.mu.Unlock()
		if send == nil {
			msg.Run()
			return
		}
		send(msg)
	})
}

// Pending returns the number of callbacks scheduled but not yet run.
func (s *ProgramScheduler) Pending() int {
	return int(s.pending.Load())
}
