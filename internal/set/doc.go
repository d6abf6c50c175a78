// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package set provides the small string-set and name-to-version map types
// shared by the state, intent and differ packages.
package set
