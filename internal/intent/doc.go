// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package intent extracts what a nix-darwin system profile declares should be
// installed. The profile's activate script runs `brew bundle` against a
// generated Brewfile, and that Brewfile is parsed into an Intent.
package intent
