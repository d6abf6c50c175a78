// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ computes the per-category difference between installed state
// and declared intent. Only presence is compared, never versions.
package differ
