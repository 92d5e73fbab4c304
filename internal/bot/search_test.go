// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package bot

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimulateSearch_EachTemplate(t *testing.T) {
	for i := range SearchTemplates {
		got := SimulateSearch(fixedRand(i), "Rust")
		assert.Equal(t, fmt.Sprintf(SearchTemplates[i], "Rust"), got)
		assert.Contains(t, got, "Rust")
	}
}

func TestSimulateSearch_EmptyQuery(t *testing.T) {
	got := SimulateSearch(fixedRand(1), "")
	assert.Equal(t, "🔍 According to simulated web sources,  is trending in computer science.", got)
}

func TestSimulateSearch_QueryVerbatim(t *testing.T) {
	q := "100% <b>Weird</b> %d"
	got := SimulateSearch(fixedRand(2), q)
	assert.True(t, strings.HasPrefix(got, "📘 "+q))
}

type outOfRange struct{}

func (outOfRange) IntN(int) int { return 99 }

func TestSimulateSearch_DefaultAndBadSource(t *testing.T) {
	got := SimulateSearch(nil, "go")
	matched := false
	for _, tpl := range SearchTemplates {
		if got == fmt.Sprintf(tpl, "go") {
			matched = true
		}
	}
	assert.True(t, matched, got)

	assert.Equal(t, fmt.Sprintf(SearchTemplates[0], "go"), SimulateSearch(outOfRange{}, "go"))
}
