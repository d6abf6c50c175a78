// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/brewdiff/internal/meta"
	"github.com/tfctl/brewdiff/internal/output"
)

// count is one row of a counts listing.
type count struct {
	label string
	n     int
}

// stateCommandAction is the action handler for the "state" subcommand. It
// reports what Homebrew has installed on this host.
func stateCommandAction(ctx context.Context, cmd *cli.Command) error {
	st, err := NewPipeline(cmd).CurrentState(ctx)
	if err != nil {
		return err
	}

	w := writer(cmd)
	if format := cmd.String("output"); format != "text" {
		return output.Emit(w, format, output.NewStateDoc(st))
	}

	counts := []count{
		{"Formulae", len(st.Formulae)},
		{"Casks", len(st.Casks)},
		{"Taps", st.Taps.Len()},
	}
	if cmd.Bool("mas") {
		counts = append(counts, count{"App Store", st.MasApps.Len()})
	}
	return writeCounts(w, counts)
}

// writeCounts writes aligned "label: n" rows with thousands separators.
func writeCounts(w io.Writer, counts []count) error {
	for _, c := range counts {
		if _, err := fmt.Fprintf(w, "%-10s %s\n", c.label+":", humanize.Comma(int64(c.n))); err != nil {
			return fmt.Errorf("%w: %w", output.ErrWrite, err)
		}
	}
	return nil
}

// stateCommandBuilder constructs the cli.Command for "state".
func stateCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "state",
		Usage:     "show installed Homebrew packages",
		UsageText: "brewdiff state [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  NewGlobalFlags("state", meta.Config.Source),
		Action: stateCommandAction,
	}
}
