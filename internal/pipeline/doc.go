// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package pipeline runs state collection and intent extraction, computes the
// difference and hands it to a renderer. Collection may run concurrently or on
// a background worker whose result is joined through a Handle.
package pipeline
