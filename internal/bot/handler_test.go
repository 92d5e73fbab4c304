// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package bot

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jeranaias/smartchat/internal/knowledge"
	"github.com/jeranaias/smartchat/internal/model"
	"github.com/jeranaias/smartchat/internal/schedule"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

type fixedRand int

func (f fixedRand) IntN(n int) int { return int(f) % n }

type failingTranscript struct {
	calls int
	err   error
	panic bool
}

func (f *failingTranscript) Append(model.Entry) error {
	f.calls++
	if f.panic {
		panic("render exploded")
	}
	return f.err
}

var fixedNow = time.Date(2025, 6, 1, 14, 3, 9, 0, time.UTC)

func newTestHandler(t *testing.T) (*Handler, *model.Transcript, *schedule.Manual) {
	t.Helper()
	tr := model.NewTranscript()
	sched := schedule.NewManual()
	h := New(Config{
		Transcript: tr,
		Scheduler:  sched,
		Delay:      500 * time.Millisecond,
		Rand:       fixedRand(0),
		Now:        func() time.Time { return fixedNow },
	})
	return h, tr, sched
}

// =============================================================================
// HANDLE TESTS
// =============================================================================

func TestHandle_EmptyInputIsNoOp(t *testing.T) {
	h, tr, sched := newTestHandler(t)

	for _, in := range []string{"", "   ", "\t\n"} {
		resp, ok := h.Handle(in)
		assert.False(t, ok)
		assert.Empty(t, resp)
	}
	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, 0, sched.Pending())
}

func TestHandle_AppendsUserNowAndBotAfterDelay(t *testing.T) {
	h, tr, sched := newTestHandler(t)

	resp, ok := h.Handle("  Tell me about Java  ")
	require.True(t, ok)
	assert.Equal(t, mustGet(t, "java"), resp)

	entries := tr.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, model.SpeakerUser, entries[0].Speaker)
	assert.Equal(t, "Tell me about Java", entries[0].Text, "user text is trimmed but keeps its case")

	sched.Advance(499 * time.Millisecond)
	assert.Equal(t, 1, tr.Len())

	sched.Advance(time.Millisecond)
	entries = tr.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, model.SpeakerBot, entries[1].Speaker)
	assert.Equal(t, resp, entries[1].Text)
}

func TestHandle_PendingRepliesAreIndependent(t *testing.T) {
	h, tr, sched := newTestHandler(t)

	_, _ = h.Handle("hello")
	sched.Advance(200 * time.Millisecond)
	_, _ = h.Handle("bye")

	assert.Equal(t, 2, sched.Pending())
	sched.Advance(time.Second)

	var texts []string
	for _, e := range tr.Entries() {
		texts = append(texts, e.Speaker.DisplayName()+":"+e.Text)
	}
	assert.Equal(t, []string{
		"You:hello",
		"You:bye",
		"Bot:" + mustGet(t, "hello"),
		"Bot:" + mustGet(t, "bye"),
	}, texts)
}

func TestHandle_EveryInputGetsNonEmptyReply(t *testing.T) {
	h := New(Config{Scheduler: schedule.Immediate{}, Rand: rand.New(rand.NewPCG(1, 2))})
	inputs := []string{"x", "search", "SEARCH ", "what TIME is it", "hello", "¿qué?", "🙂", strings.Repeat("z", 500)}
	for _, in := range inputs {
		resp, ok := h.Handle(in)
		assert.True(t, ok, in)
		assert.NotEmpty(t, resp, in)
	}
}

func TestHandle_SwallowsAppendErrors(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ft := &failingTranscript{err: errors.New("window closed")}
	h := New(Config{Transcript: ft, Scheduler: schedule.Immediate{}, Logger: zap.New(core)})

	resp, ok := h.Handle("hello")
	assert.True(t, ok)
	assert.Equal(t, mustGet(t, "hello"), resp)
	assert.Equal(t, 2, ft.calls)
	assert.Equal(t, 2, logs.FilterMessage("transcript append failed").Len())

	resp, ok = h.Handle("bye")
	assert.True(t, ok)
	assert.Equal(t, mustGet(t, "bye"), resp)
}

func TestHandle_SwallowsAppendPanics(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ft := &failingTranscript{panic: true}
	h := New(Config{Transcript: ft, Scheduler: schedule.Immediate{}, Logger: zap.New(core)})

	require.NotPanics(t, func() {
		resp, ok := h.Handle("what is ai")
		assert.True(t, ok)
		assert.Equal(t, mustGet(t, "ai"), resp)
	})
	assert.Equal(t, 2, logs.FilterMessage("transcript append panicked").Len())
}

func TestHandle_LogsDispatch(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	h := New(Config{Scheduler: schedule.Immediate{}, Logger: zap.New(core)})

	_, _ = h.Handle("python")
	entries := logs.FilterMessage("dispatched input").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "knowledge", entries[0].ContextMap()["kind"])
	assert.Equal(t, "python", entries[0].ContextMap()["keyword"])
	assert.Equal(t, "python", entries[0].ContextMap()["input"])

	_, _ = h.Handle(strings.Repeat("x", 200))
	entries = logs.FilterMessage("dispatched input").All()
	require.Len(t, entries, 2)
	assert.Len(t, entries[1].ContextMap()["input"], 80)
}

func TestHandle_NegativeDelayClamped(t *testing.T) {
	h := New(Config{Delay: -time.Second})
	assert.Equal(t, time.Duration(0), h.Delay())
}

func TestGreet(t *testing.T) {
	h, tr, sched := newTestHandler(t)
	h.Greet("")
	h.Greet("Welcome")
	require.Equal(t, 1, tr.Len())
	assert.Equal(t, 0, sched.Pending())
	last, ok := tr.Last(model.SpeakerBot)
	require.True(t, ok)
	assert.Equal(t, "Welcome", last.Text)
}

// =============================================================================
// RESPOND TESTS
// =============================================================================

func TestRespond_Dispatch(t *testing.T) {
	h, _, _ := newTestHandler(t)

	tests := []struct {
		name    string
		input   string
		kind    Kind
		text    string
		keyword string
	}{
		{"blank", "  ", KindNone, "", ""},
		{"search lowers query", "search Go Generics", KindSearch, fmt.Sprintf(SearchTemplates[0], "go generics"), "go generics"},
		{"search upper command", "SEARCH Quantum Computing", KindSearch, fmt.Sprintf(SearchTemplates[0], "quantum computing"), "quantum computing"},
		{"search degenerate", "SEARCH ", KindSearch, fmt.Sprintf(SearchTemplates[0], ""), ""},
		{"search beats time", "search time travel", KindSearch, fmt.Sprintf(SearchTemplates[0], "time travel"), "time travel"},
		{"search beats knowledge", "search java", KindSearch, fmt.Sprintf(SearchTemplates[0], "java"), "java"},
		{"time anywhere", "What TIME is it?", KindTime, "🕒 Current time: 14:03:09", ""},
		{"time beats knowledge", "hello, time please", KindTime, "🕒 Current time: 14:03:09", ""},
		{"searchable is not a command", "searchable java", KindKnowledge, mustGet(t, "java"), "java"},
		{"java before python", "java or python?", KindKnowledge, mustGet(t, "java"), "java"},
		{"python alone", "PYTHON", KindKnowledge, mustGet(t, "python"), "python"},
		{"help block", "help", KindKnowledge, knowledge.HelpText, "help"},
		{"fallback", "xyz", KindFallback, FallbackResponse, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := h.Respond(tc.input)
			assert.Equal(t, tc.kind, r.Kind)
			assert.Equal(t, tc.text, r.Text)
			assert.Equal(t, tc.keyword, r.Keyword)
		})
	}
}

func TestRespond_FallbackIsExact(t *testing.T) {
	h, _, _ := newTestHandler(t)
	assert.Equal(t, "I'm not sure. Try 'help' or 'search <your topic>'.", h.Respond("qqq").Text)
}

func TestRespond_KeywordIsIdempotent(t *testing.T) {
	h, _, _ := newTestHandler(t)
	for _, kw := range knowledge.Default().Keywords() {
		first := h.Respond(kw)
		second := h.Respond(kw)
		assert.Equal(t, first, second, kw)
	}
}

func TestRespond_CustomTable(t *testing.T) {
	tbl, err := knowledge.New(knowledge.Pair{Keyword: "gopher", Response: "Gophers dig."})
	require.NoError(t, err)
	h := New(Config{Knowledge: tbl})

	assert.Equal(t, "Gophers dig.", h.Respond("I saw a GOPHER").Text)
	assert.Equal(t, KindFallback, h.Respond("java").Kind)
	assert.Same(t, tbl, h.Knowledge())
}

func mustGet(t *testing.T, keyword string) string {
	t.Helper()
	resp, ok := knowledge.Default().Get(keyword)
	require.True(t, ok, keyword)
	return resp
}
