// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package knowledge

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Errors(t *testing.T) {
	_, err := New()
	assert.ErrorIs(t, err, ErrEmptyTable)

	_, err = New(Pair{Keyword: "ok", Response: "x"}, Pair{Keyword: "   ", Response: "y"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyKeyword))
	assert.Contains(t, err.Error(), "entry 2")
}

func TestNew_LowercasesAndKeepsFirstPosition(t *testing.T) {
	tbl, err := New(
		Pair{Keyword: "Go", Response: "first"},
		Pair{Keyword: "rust", Response: "r"},
		Pair{Keyword: "go", Response: "second"},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"go", "rust"}, tbl.Keywords())
	resp, ok := tbl.Get("GO")
	require.True(t, ok)
	assert.Equal(t, "second", resp)
	assert.Equal(t, 2, tbl.Len())
}

func TestLookup_FirstMatchWins(t *testing.T) {
	tbl := Default()

	tests := []struct {
		input   string
		keyword string
	}{
		{"tell me about java and python", "java"},
		{"python please", "python"},
		{"what is your name", "name"},
		{"hello there", "hello"},
		{"help", "help"},
		{"i love oop", "oop"},
		{"bye", "bye"},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			p, ok := tbl.Lookup(tc.input)
			require.True(t, ok)
			assert.Equal(t, tc.keyword, p.Keyword)
		})
	}

	_, ok := tbl.Lookup("zzz qqq")
	assert.False(t, ok)
}

func TestLookup_SubstringShadowing(t *testing.T) {
	// "hi" is inside "this", so the earlier keyword wins over later ones.
	p, ok := Default().Lookup("this is about python")
	require.True(t, ok)
	assert.Equal(t, "hi", p.Keyword)
}

func TestDefault_Order(t *testing.T) {
	want := []string{"hello", "hi", "name", "java", "oop", "ai", "ml", "python", "creator", "help", "bye"}
	assert.Equal(t, want, Default().Keywords())
	help, ok := Default().Get("help")
	require.True(t, ok)
	assert.Equal(t, HelpText, help)
}

func TestDefault_Responses(t *testing.T) {
	tests := []struct {
		keyword string
		want    string
	}{
		{"hello", "Hello there! 👋 I'm here 24/7. Ask me about Java, AI, or tech."},
		{"hi", "Hey! How’s your day going?"},
		{"java", "Java is a class-based, object-oriented language developed by Sun Microsystems (now Oracle)."},
		{"ml", "Machine Learning (ML) is a subset of AI that allows systems to learn from data."},
		{"bye", "Goodbye 👋 It was nice chatting with you!"},
	}
	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			got, ok := Default().Get(tt.keyword)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNilTable(t *testing.T) {
	var tbl *Table
	_, ok := tbl.Lookup("hello")
	assert.False(t, ok)
	assert.Zero(t, tbl.Len())
	assert.Nil(t, tbl.Keywords())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "knowledge.toml")
	content := `
[[entry]]
keyword = "Go"
response = "Go is a compiled language."

[[entry]]
keyword = "gopher"
response = "The Go mascot."
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	tbl, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "gopher"}, tbl.Keywords())

	// "go" is a prefix of "gopher" and comes first.
	p, ok := tbl.Lookup("what is a gopher")
	require.True(t, ok)
	assert.Equal(t, "go", p.Keyword)
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Parse([]byte("entry = [[["))
	assert.Error(t, err)

	_, err = Parse([]byte(""))
	assert.ErrorIs(t, err, ErrEmptyTable)

	_, err = Parse([]byte("[[entry]]\nkeyword = \"a\"\nanswer = \"b\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown key")
}

func TestMarshal_RoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)

	tbl, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Default().Pairs(), tbl.Pairs())
}
