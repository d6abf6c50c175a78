// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders a diff report as text (grouped or block layout, plus
// summary and stats) or as JSON/YAML documents. The text layouts are stable;
// color is applied on top and never changes the characters written.
package output
