// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for brewdiff's user
// configuration. The configuration is an optional YAML document located in the
// user's configuration directory, typically:
//   - macOS: $HOME/Library/Application Support/brewdiff.yaml
//   - Linux: $XDG_CONFIG_HOME/brewdiff.yaml or $HOME/.config/brewdiff.yaml
//
// BREWDIFF_CFG_FILE overrides the location. Actual resolution otherwise relies
// on os.UserConfigDir which follows platform conventions.
package config
