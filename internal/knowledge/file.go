// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package knowledge

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// fileFormat is the on-disk layout of a knowledge file.
type fileFormat struct {
	Entry []Pair `toml:"entry"`
}

// LoadFile reads a TOML knowledge file and builds a table from its
// [[entry]] tables in document order.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge file: %w", err)
	}
	return Parse(data)
}

// Parse builds a table from TOML bytes.
func Parse(data []byte) (*Table, error) {
	var f fileFormat
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("parse knowledge file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parse knowledge file: unknown key %q", undecoded[0].String())
	}
	t, err := New(f.Entry...)
	if err != nil {
		return nil, fmt.Errorf("knowledge file: %w", err)
	}
	return t, nil
}

// Marshal encodes t in the format LoadFile reads.
func Marshal(t *Table) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := toml.NewEncoder(buf).Encode(fileFormat{Entry: t.Pairs()}); err != nil {
		return nil, fmt.Errorf("encode knowledge file: %w", err)
	}
	return buf.Bytes(), nil
}
