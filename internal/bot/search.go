// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package bot

import (
	"fmt"
	"math/rand/v2"
)

// RandSource picks a uniform integer in [0, n). *rand.Rand satisfies it.
type RandSource interface {
	IntN(n int) int
}

// globalRand draws from the math/rand/v2 top-level source, which is safe for
// concurrent use.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// SearchTemplates are the canned search results. Each has exactly one %s
// for the query.
var SearchTemplates = [...]string{
	"Here’s what I found on %s: it’s an interesting topic widely discussed in tech forums.",
	"🔍 According to simulated web sources, %s is trending in computer science.",
	"📘 %s is a vast subject! You can read more on Wikipedia or educational sites.",
	"Sorry, I can’t access real-time web, but you can easily find info on %s online.",
}

// SimulateSearch returns one of SearchTemplates with query inserted verbatim.
// The query is not validated; an empty query is allowed.
func SimulateSearch(r RandSource, query string) string {
	if r == nil {
		r = globalRand{}
	}
	i := r.IntN(len(SearchTemplates))
	if i < 0 || i >= len(SearchTemplates) {
		i = 0
	}
	return fmt.Sprintf(SearchTemplates[i], query)
}
