// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jeranaias/smartchat/internal/util"
)

// RunTopics lists the knowledge keywords in lookup order with the first
// line of each response, fitted to width columns.
func RunTopics(w io.Writer, env *Env, width int) error {
	pairs := env.Knowledge.Pairs()

	if env.Quiet {
		for _, p := range pairs {
			if _, err := fmt.Fprintln(w, p.Keyword); err != nil {
				return err
			}
		}
		return nil
	}

	col := 0
	for _, p := range pairs {
		if n := util.StringWidth(p.Keyword); n > col {
			col = n
		}
	}
	col += 2

	fmt.Fprintln(w, TitleStyle.Render(fmt.Sprintf("%d topics (first match wins)", len(pairs))))
	fmt.Fprintln(w)
	for _, p := range pairs {
		pad := strings.Repeat(" ", col-util.StringWidth(p.Keyword))
		summary := util.TruncateWidth(util.FirstLine(p.Response), width-col-2)
		if _, err := fmt.Fprintf(w, "  %s%s%s\n", KeywordStyle.Render(p.Keyword), pad, summary); err != nil {
			return err
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, DimStyle.Render("Also: 'search <topic>' and anything containing 'time'."))
	return nil
}
