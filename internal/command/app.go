// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/brewdiff/internal/config"
	"github.com/tfctl/brewdiff/internal/log"
	"github.com/tfctl/brewdiff/internal/meta"
	"github.com/tfctl/brewdiff/internal/util"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	sd, _ := os.Getwd()

	// The arg[1] immediately following the binary (arg[0]) is the brewdiff
	// subcommand and also represents the namespace key to be used when
	// retrieving config values. arg[1] could be -h/--help, so ignore it if it
	// appears to be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	config.Config.Namespace = ns
	cfg, err := config.Load()
	if err != nil {
		// The config file is optional.
		log.Debugf("config not loaded: %v", err)
		cfg = config.Type{Namespace: ns}
	}

	meta := meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		StartingDir: sd,
	}

	// A non-flag arg right after diff or intent is the PROFILE. Check it now so
	// a bad path fails before anything is queried.
	if (ns == "diff" || ns == "intent") && len(args) > 2 && !strings.HasPrefix(args[2], "-") {
		if _, err := util.ParseProfileDir(args[2]); err != nil {
			return nil, fmt.Errorf("failed to parse profile (%s): %w", args[2], err)
		}
		meta.Profile = args[2]
	}

	app := &cli.Command{
		Name:  "brewdiff",
		Usage: "Homebrew and nix-darwin drift detector",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "brewdiff version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		diffCommandBuilder(meta),
		intentCommandBuilder(meta),
		stateCommandBuilder(meta),
		completionCommandBuilder(meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
