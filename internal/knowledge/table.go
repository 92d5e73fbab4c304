// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package knowledge

import (
	"errors"
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var (
	// ErrEmptyKeyword is returned when a pair has a blank keyword.
	ErrEmptyKeyword = errors.New("knowledge: empty keyword")

	// ErrEmptyTable is returned when a table would contain no pairs.
	ErrEmptyTable = errors.New("knowledge: table has no entries")
)

// Pair is one keyword and the response it triggers.
type Pair struct {
	Keyword  string `toml:"keyword" json:"keyword"`
	Response string `toml:"response" json:"response"`
}

// Table is an immutable ordered keyword table.
type Table struct {
	pairs *orderedmap.OrderedMap[string, string]
}

// New builds a table from pairs in order. Keywords are trimmed and
// lower-cased. A repeated keyword replaces the earlier response but keeps the
// earlier position.
func New(pairs ...Pair) (*Table, error) {
	if len(pairs) == 0 {
		return nil, ErrEmptyTable
	}
	m := orderedmap.New[string, string](orderedmap.WithCapacity[string, string](len(pairs)))
	for i, p := range pairs {
		kw := strings.ToLower(strings.TrimSpace(p.Keyword))
		if kw == "" {
			return nil, fmt.Errorf("entry %d: %w", i+1, ErrEmptyKeyword)
		}
		m.Set(kw, p.Response)
	}
	return &Table{pairs: m}, nil
}

// MustNew is like New but panics on error. Used for the built-in table.
func MustNew(pairs ...Pair) *Table {
	t, err := New(pairs...)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup scans the table in insertion order and returns the first pair whose
// keyword is contained in lowered. The caller lower-cases the input.
func (t *Table) Lookup(lowered string) (Pair, bool) {
	if t == nil {
		return Pair{}, false
	}
	for p := t.pairs.Oldest(); p != nil; p = p.Next() {
		if strings.Contains(lowered, p.Key) {
			return Pair{Keyword: p.Key, Response: p.Value}, true
		}
	}
	return Pair{}, false
}

// Get returns the response stored for an exact keyword.
func (t *Table) Get(keyword string) (string, bool) {
	if t == nil {
		return "", false
	}
	return t.pairs.Get(strings.ToLower(strings.TrimSpace(keyword)))
}

// Len returns the number of distinct keywords.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return t.pairs.Len()
}

// Keywords returns the keywords in lookup order.
func (t *Table) Keywords() []string {
	if t == nil {
		return nil
	}
	out := make([]string, 0, t.pairs.Len())
	for p := t.pairs.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}
	return out
}

// Pairs returns a copy of the table contents in lookup order.
func (t *Table) Pairs() []Pair {
	if t == nil {
		return nil
	}
	out := make([]Pair, 0, t.pairs.Len())
	for p := t.pairs.Oldest(); p != nil; p = p.Next() {
		out = append(out, Pair{Keyword: p.Key, Response: p.Value})
	}
	return out
}
