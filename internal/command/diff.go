// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/brewdiff/internal/differ"
	"github.com/tfctl/brewdiff/internal/log"
	"github.com/tfctl/brewdiff/internal/meta"
	"github.com/tfctl/brewdiff/internal/output"
)

// diffCommandAction is the action handler for the "diff" subcommand. It
// compares installed Homebrew state with the profile's Brewfile.
func diffCommandAction(ctx context.Context, cmd *cli.Command) error {
	profile, err := ResolveProfile(cmd)
	if err != nil {
		return err
	}

	report, err := NewPipeline(cmd).Run(ctx, profile)
	if err != nil {
		return err
	}

	w := writer(cmd)
	switch cmd.String("output") {
	case "json":
		err = output.WriteJSON(w, report)
	case "yaml":
		err = output.WriteYAML(w, report)
	default:
		err = writeDiffText(w, cmd, profile, report)
	}
	if err != nil {
		return err
	}

	if cmd.Bool("exit-code") && report.HasChanges() {
		log.Debugf("exit-code requested: total_changes=%d", report.TotalChanges())
		return ErrChangesDetected
	}

	return nil
}

// writeDiffText renders the report in the selected layout, followed by the
// optional stats and summary.
func writeDiffText(w io.Writer, cmd *cli.Command, profile string, report differ.Report) error {
	r := NewRenderer(cmd)

	var (
		n   int
		err error
	)
	switch cmd.String("format") {
	case "blocks":
		var header *output.Header
		if old := cmd.String("old"); old != "" {
			header = &output.Header{Old: old, New: profile}
		}
		n, err = r.WriteBlocks(w, report, header)
	default:
		n, err = r.WriteGrouped(w, report)
	}
	if err != nil {
		return err
	}
	log.Debugf("diff rendered: lines=%d", n)

	if cmd.Bool("stats") {
		if err := r.WriteStats(w, report); err != nil {
			return err
		}
	}

	if cmd.Bool("summary") {
		if _, err := r.WriteSummary(w, report); err != nil {
			return err
		}
	}

	return nil
}

// diffCommandBuilder constructs the cli.Command for "diff", wiring metadata,
// flags, and action handlers.
func diffCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:        "diff",
		Usage:       "compare installed Homebrew packages with the system profile",
		UsageText:   "brewdiff diff [PROFILE] [options]",
		Description: "The grouped format lists formulae, casks and taps. Set grouped.mas: true\n" +
			"in brewdiff.yaml to add App Store apps. The blocks, stats and json/yaml\n" +
			"outputs include App Store apps whenever --mas is on.",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			NewColorFlag("diff", meta.Config.Source),
			&cli.BoolFlag{
				Name:  "concurrent",
				Usage: "collect state and intent concurrently",
			},
			&cli.BoolFlag{
				Name:  "exit-code",
				Usage: "exit with status 3 when changes are detected",
			},
			NewFormatFlag("diff", meta.Config.Source),
			&cli.StringFlag{
				Name:  "old",
				Usage: "previous profile named in the blocks header",
			},
			NewProfileFlag("diff", meta.Config.Source),
			&cli.BoolFlag{
				Name:    "stats",
				Aliases: []string{"S"},
				Usage:   "show per-category counts after the diff",
			},
			&cli.BoolFlag{
				Name:    "summary",
				Aliases: []string{"s"},
				Usage:   "show the total added and removed after the diff",
			},
		}, NewGlobalFlags("diff", meta.Config.Source)...),
		Action: diffCommandAction,
	}
}
