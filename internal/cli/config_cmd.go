// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/jeranaias/smartchat/internal/config"
	"github.com/jeranaias/smartchat/internal/knowledge"
)

// RunConfig handles "config show", "config init", "config path" and
// "config knowledge".
func RunConfig(w io.Writer, args Args) error {
	switch args.Subcommand {
	case "", "show":
		cfg, err := LoadConfig(args)
		if err != nil {
			return err
		}
		data, err := cfg.EncodeTOML()
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err

	case "path":
		path, err := configPath(args)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, path)
		return err

	case "init":
		path, err := configPath(args)
		if err != nil {
			return err
		}
		if _, statErr := os.Stat(path); statErr == nil && !args.Force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := config.SaveTOML(config.Default(), path); err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "Wrote %s\n", path)
		return err

	case "knowledge":
		cfg, err := LoadConfig(args)
		if err != nil {
			return err
		}
		table, err := LoadKnowledge(cfg)
		if err != nil {
			return err
		}
		data, err := knowledge.Marshal(table)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err

	default:
		return &UsageError{Message: fmt.Sprintf("unknown config subcommand %q", args.Subcommand)}
	}
}

func configPath(args Args) (string, error) {
	if args.ConfigPath != "" {
		return args.ConfigPath, nil
	}
	return config.ConfigPathTOML()
}
