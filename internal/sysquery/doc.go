// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package sysquery is the narrow seam between brewdiff and the host: spawning
// external commands, probing paths and looking up executables. Tests replace
// the host with Fake so no real brew or mas is ever invoked.
package sysquery
