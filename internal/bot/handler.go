// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package bot

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jeranaias/smartchat/internal/knowledge"
	"github.com/jeranaias/smartchat/internal/model"
	"github.com/jeranaias/smartchat/internal/schedule"
	"github.com/jeranaias/smartchat/internal/util"
)

// FallbackResponse is the reply when nothing else matches.
const FallbackResponse = "I'm not sure. Try 'help' or 'search <your topic>'."

// TimeLayout formats the clock reply.
const TimeLayout = "15:04:05"

// maxLoggedInput caps the input echoed into debug logs.
const maxLoggedInput = 80

const (
	searchCommand = "search"
	timeKeyword   = "time"
)

// =============================================================================
// REPLY TYPES
// =============================================================================

// Kind classifies how a reply was produced.
type Kind string

const (
	KindNone      Kind = ""
	KindSearch    Kind = "search"
	KindTime      Kind = "time"
	KindKnowledge Kind = "knowledge"
	KindFallback  Kind = "fallback"
)

// Reply is the outcome of dispatching one input.
type Reply struct {
	Kind Kind
	Text string

	// Keyword is the matched knowledge keyword for KindKnowledge, and the
	// query for KindSearch.
	Keyword string
}

// Appender receives transcript entries. *model.Transcript satisfies it; so
// do renderers that can fail.
type Appender interface {
	Append(model.Entry) error
}

// Config configures a Handler. Zero fields get defaults in New.
type Config struct {
	// Knowledge is the keyword table. Defaults to knowledge.Default().
	Knowledge *knowledge.Table

	// Transcript receives both user and bot entries. Defaults to a fresh
	// in-memory transcript.
	Transcript Appender

	// Scheduler defers the bot entry. Defaults to a timer scheduler.
	Scheduler schedule.Scheduler

	// Delay is the typing delay before the bot entry is appended. Negative
	// values are treated as zero.
	Delay time.Duration

	// Rand picks search templates. Defaults to math/rand/v2.
	Rand RandSource

	// Now is the wall clock. Defaults to time.Now.
	Now func() time.Time

	// Logger records dispatch decisions. Defaults to a no-op logger.
	Logger *zap.Logger
}

// =============================================================================
// HANDLER
// =============================================================================

// Handler answers chat input. Handle must be called from one goroutine at a
// time; scheduled appends may run concurrently with it.
type Handler struct {
	table      *knowledge.Table
	transcript Appender
	scheduler  schedule.Scheduler
	delay      time.Duration
	rand       RandSource
	now        func() time.Time
	logger     *zap.Logger
}

// New creates a handler, filling defaults for unset fields.
func New(cfg Config) *Handler {
	h := &Handler{
		table:      cfg.Knowledge,
		transcript: cfg.Transcript,
		scheduler:  cfg.Scheduler,
		delay:      cfg.Delay,
		rand:       cfg.Rand,
		now:        cfg.Now,
		logger:     cfg.Logger,
	}
	if h.table == nil {
		h.table = knowledge.Default()
	}
	if h.transcript == nil {
		h.transcript = model.NewTranscript()
	}
	if h.scheduler == nil {
		h.scheduler = schedule.NewTimer()
	}
	if h.delay < 0 {
		h.delay = 0
	}
	if h.rand == nil {
		h.rand = globalRand{}
	}
	if h.now == nil {
		h.now = time.Now
	}
	if h.logger == nil {
		h.logger = zap.NewNop()
	}
	return h
}

// Knowledge returns the table the handler answers from.
func (h *Handler) Knowledge() *knowledge.Table {
	return h.table
}

// Delay returns the typing delay.
func (h *Handler) Delay() time.Duration {
	return h.delay
}

// Handle processes one submission. It returns false and records nothing when
// input is blank. Otherwise it appends the user's trimmed line now, schedules
// the bot line after the typing delay, and returns the reply text.
func (h *Handler) Handle(input string) (string, bool) {
	reply, ok := h.HandleReply(input)
	return reply.Text, ok
}

// HandleReply is Handle returning the full classification.
func (h *Handler) HandleReply(input string) (Reply, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Reply{Kind: KindNone}, false
	}

	h.append(model.NewEntry(model.SpeakerUser, trimmed, h.now()))

	reply := h.Respond(trimmed)
	h.logger.Debug("dispatched input",
		zap.String("kind", string(reply.Kind)),
		zap.String("keyword", reply.Keyword),
		zap.String("input", util.TruncateRunes(trimmed, maxLoggedInput)),
	)

	text := reply.Text
	h.scheduler.Schedule(h.delay, func() {
		h.append(model.NewEntry(model.SpeakerBot, text, h.now()))
	})

	return reply, true
}

// Greet appends a bot line immediately, without the typing delay.
func (h *Handler) Greet(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	h.append(model.NewEntry(model.SpeakerBot, text, h.now()))
}

// Respond classifies input and builds the reply without touching the
// transcript. Blank input yields KindNone.
func (h *Handler) Respond(input string) Reply {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Reply{Kind: KindNone}
	}
	lowered := strings.ToLower(trimmed)

	if query, ok := searchQuery(lowered); ok {
		return Reply{Kind: KindSearch, Text: SimulateSearch(h.rand, query), Keyword: query}
	}

	if strings.Contains(lowered, timeKeyword) {
		return Reply{Kind: KindTime, Text: "🕒 Current time: " + h.now().Format(TimeLayout)}
	}

	if p, ok := h.table.Lookup(lowered); ok {
		return Reply{Kind: KindKnowledge, Text: p.Response, Keyword: p.Keyword}
	}

	return Reply{Kind: KindFallback, Text: FallbackResponse}
}

// searchQuery reports whether lowered is a search command and returns the
// lower-cased query. A bare "search" is an empty query.
func searchQuery(lowered string) (string, bool) {
	if lowered != searchCommand && !strings.HasPrefix(lowered, searchCommand+" ") {
		return "", false
	}
	return strings.TrimSpace(lowered[len(searchCommand):]), true
}

// append writes e to the transcript. Errors and panics from the transcript
// are logged and dropped so one bad render never stops the conversation.
func (h *Handler) append(e model.Entry) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Debug("transcript append panicked",
				zap.String("speaker", e.Speaker.String()),
				zap.String("panic", fmt.Sprint(r)),
			)
		}
	}()
	if err := h.transcript.Append(e); err != nil {
		h.logger.Debug("transcript append failed",
			zap.String("speaker", e.Speaker.String()),
			zap.Error(err),
		)
	}
}
