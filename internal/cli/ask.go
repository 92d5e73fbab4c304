// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"io"
	"strings"

	"github.com/jeranaias/smartchat/internal/model"
	"github.com/jeranaias/smartchat/internal/schedule"
)

// RunAsk answers one question and waits for the reply to be printed.
//
//	smartchat ask "what is ml"
//	smartchat -q ask search vector databases
func RunAsk(w io.Writer, env *Env, query string) error {
	if strings.TrimSpace(query) == "" {
		return &UsageError{Message: "ask requires a question"}
	}

	tr := model.NewTranscript()
	printer := newTranscriptPrinter(w, env, true)
	tr.OnAppend(printer.Print)

	timer := schedule.NewTimer()
	h := env.NewHandler(tr, timer)
	h.Handle(query)
	timer.Wait()

	return printer.Err()
}
