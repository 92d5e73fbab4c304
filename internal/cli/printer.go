// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/jeranaias/smartchat/internal/model"
)

// transcriptPrinter writes transcript entries to a terminal as they are
// appended. Timer callbacks call it from their own goroutines.
type transcriptPrinter struct {
	mu       sync.Mutex
	w        io.Writer
	layout   string
	botName  string
	userName string
	quiet    bool
	showUser bool
	err      error
}

func newTranscriptPrinter(w io.Writer, env *Env, showUser bool) *transcriptPrinter {
	return &transcriptPrinter{
		w:        w,
		layout:   env.Config.UI.TimestampFormat,
		botName:  env.Config.BotName,
		userName: env.Config.UserName,
		quiet:    env.Quiet,
		showUser: showUser,
	}
}

// Print writes e followed by a blank line. In quiet mode only bot text is
// written, one reply per line.
func (p *transcriptPrinter) Print(e model.Entry) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if e.IsUser() && (p.quiet || !p.showUser) {
		return
	}

	var err error
	if p.quiet {
		_, err = fmt.Fprintln(p.w, e.Text)
	} else {
		_, err = fmt.Fprintf(p.w, "%s\n\n", p.format(e))
	}
	if err != nil && p.err == nil {
		p.err = err
	}
}

func (p *transcriptPrinter) format(e model.Entry) string {
	name := p.botName
	if e.IsUser() {
		name = p.userName
	}
	stamp := DimStyle.Render("[" + e.Timestamp.Format(p.layout) + "]")
	return stamp + " " + speakerStyle(e.Speaker).Render(name+": "+e.Text)
}

// Err returns the first write error.
func (p *transcriptPrinter) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}
