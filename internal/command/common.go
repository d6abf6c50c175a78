// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/brewdiff/internal/config"
	"github.com/tfctl/brewdiff/internal/log"
	"github.com/tfctl/brewdiff/internal/meta"
	"github.com/tfctl/brewdiff/internal/output"
	"github.com/tfctl/brewdiff/internal/pipeline"
	"github.com/tfctl/brewdiff/internal/sysquery"
	"github.com/tfctl/brewdiff/internal/util"
)

// ErrChangesDetected is returned by diff --exit-code when the host does not
// match the profile.
var ErrChangesDetected = errors.New("homebrew changes detected")

// Querier runs the brew and mas queries for all commands.
var Querier sysquery.Querier = sysquery.Exec{}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// NewPipeline builds a pipeline from the command's flags and the brew.paths
// config key.
func NewPipeline(cmd *cli.Command) *pipeline.Pipeline {
	paths, err := config.GetStringSlice("brew.paths", []string{})
	if err != nil {
		log.Warnf("ignoring brew.paths: %v", err)
	}

	return pipeline.New(pipeline.Options{
		Querier:    Querier,
		BrewPaths:  paths,
		AppStore:   cmd.Bool("mas"),
		Concurrent: cmd.Bool("concurrent"),
	})
}

// NewRenderer builds a renderer honoring --color. Color defaults to on when
// stdout is a terminal and --color was not given. The grouped layout shows
// formulae, casks and taps; the grouped.mas config key adds App Store apps
// when they are collected.
func NewRenderer(cmd *cli.Command) *output.Renderer {
	color := cmd.Bool("color")
	if !cmd.IsSet("color") {
		color = output.IsTerminal()
	}

	grouped, err := config.GetBool("grouped.mas", false)
	if err != nil {
		log.Warnf("ignoring grouped.mas: %v", err)
	}

	return &output.Renderer{
		Color:    color,
		AppStore: cmd.Bool("mas") && grouped,
	}
}

// ResolveProfile returns the profile to read: the PROFILE argument, else the
// one captured at startup, else --profile.
func ResolveProfile(cmd *cli.Command) (string, error) {
	profile := cmd.Args().First()
	if profile == "" {
		profile = GetMeta(cmd).Profile
	}
	if profile == "" {
		profile = cmd.String("profile")
	}

	resolved, err := util.ParseProfileDir(profile)
	if err != nil {
		return "", fmt.Errorf("failed to parse profile (%s): %w", profile, err)
	}
	log.Debugf("profile %s resolves to %s", profile, resolved)

	return profile, nil
}

// writer returns the root command's output stream.
func writer(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}
