// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package version reports the brewdiff build version. It must not import any
// other brewdiff package.
package version

import "runtime/debug"

// override is set at link time:
//
//	-ldflags "-X github.com/tfctl/brewdiff/internal/version.override=v1.2.3"
var override string

// Version is the linked version, else the module version, else "dev".
var Version = resolve(override)

func resolve(linked string) string {
	if linked != "" {
		return linked
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}
