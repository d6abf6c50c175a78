// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package state collects what Homebrew (and, optionally, mas) reports as
// installed right now: top-level formulae, casks, taps and App Store apps.
package state
