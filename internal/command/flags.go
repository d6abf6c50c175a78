// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

// DefaultProfile is the active nix-darwin system profile.
const DefaultProfile = "/run/current-system"

// NewGlobalFlags returns the flags shared by every query command. params[0]
// is the command namespace and params[1] the config file.
func NewGlobalFlags(params ...string) (flags []cli.Flag) {
	masFlag := &cli.BoolFlag{
		Name:  "mas",
		Usage: "include Mac App Store apps",
		Value: true,
	}

	if len(params) == 2 {
		masFlag = NameSpacedBoolFlagFromConfigFile(params[0], params[1], masFlag)
	}

	flags = []cli.Flag{
		masFlag,
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format (text, json, yaml)",
			Value:   "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
	}

	return
}

// NewColorFlag constructs the "color" flag, optionally sourced from the
// config file.
func NewColorFlag(params ...string) (flag *cli.BoolFlag) {
	flag = &cli.BoolFlag{
		Name:    "color",
		Aliases: []string{"c"},
		Usage:   "enable colored text output (default when stdout is a terminal)",
	}

	if len(params) == 2 {
		flag = NameSpacedBoolFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NewProfileFlag constructs the "profile" flag, used when no PROFILE argument
// is given. It is sourced from BREWDIFF_PROFILE and, when params carries the
// namespace and config file, from the config file.
func NewProfileFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:    "profile",
		Aliases: []string{"p"},
		Usage:   "nix-darwin system profile to read intent from",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("BREWDIFF_PROFILE"),
		),
		Value: DefaultProfile,
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NewFormatFlag constructs the "format" flag selecting the text layout.
func NewFormatFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "text layout (grouped, blocks)",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("BREWDIFF_FORMAT"),
		),
		Value: "grouped",
		Validator: func(value string) error {
			return FlagValidators(value, FormatValidator)
		},
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	flag.Sources.Chain = append(flag.Sources.Chain, configSources(ns, path, flag.Name)...)
	return flag
}

// NameSpacedBoolFlagFromConfigFile is NameSpacedValueChainFlagFromConfigFile
// for boolean flags.
func NameSpacedBoolFlagFromConfigFile(ns string, path string, flag *cli.BoolFlag) *cli.BoolFlag {
	flag.Sources.Chain = append(flag.Sources.Chain, configSources(ns, path, flag.Name)...)
	return flag
}

// configSources returns the "<ns>.<name>" and "<name>" lookups into the YAML
// file at path, in that order. There are none without a config file.
func configSources(ns string, path string, name string) []cli.ValueSource {
	if path == "" {
		return nil
	}
	return []cli.ValueSource{
		yaml.YAML(ns+"."+name, altsrc.StringSourcer(path)),
		yaml.YAML(name, altsrc.StringSourcer(path)),
	}
}
