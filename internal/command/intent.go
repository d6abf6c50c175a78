// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/brewdiff/internal/meta"
	"github.com/tfctl/brewdiff/internal/output"
)

// intentCommandAction is the action handler for the "intent" subcommand. It
// reports what the profile's Brewfile declares.
func intentCommandAction(ctx context.Context, cmd *cli.Command) error {
	profile, err := ResolveProfile(cmd)
	if err != nil {
		return err
	}

	p := NewPipeline(cmd)
	brewfile, err := p.Brewfile(profile)
	if err != nil {
		return err
	}
	in, err := p.ExtractIntent(profile)
	if err != nil {
		return err
	}

	w := writer(cmd)
	if format := cmd.String("output"); format != "text" {
		return output.Emit(w, format, output.NewIntentDoc(brewfile, in))
	}

	built := "unknown"
	if fi, err := os.Stat(brewfile); err == nil {
		built = humanize.Time(fi.ModTime())
	}
	if _, err := fmt.Fprintf(w, "Brewfile: %s (built %s)\n", brewfile, built); err != nil {
		return fmt.Errorf("%w: %w", output.ErrWrite, err)
	}

	counts := []count{
		{"Formulae", in.Formulae.Len()},
		{"Casks", in.Casks.Len()},
		{"Taps", in.Taps.Len()},
	}
	if cmd.Bool("mas") {
		counts = append(counts, count{"App Store", in.MasApps.Len()})
	}
	return writeCounts(w, counts)
}

// intentCommandBuilder constructs the cli.Command for "intent".
func intentCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "intent",
		Usage:     "show packages declared by the system profile",
		UsageText: "brewdiff intent [PROFILE] [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			NewProfileFlag("intent", meta.Config.Source),
		}, NewGlobalFlags("intent", meta.Config.Source)...),
		Action: intentCommandAction,
	}
}
