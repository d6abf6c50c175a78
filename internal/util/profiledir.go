// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"os"
	"path/filepath"
)

// ParseProfileDir resolves a system profile path to an absolute directory.
// Relative paths are taken against the CWD and symlinks are followed, so
// /run/current-system resolves to its store path. It returns an error if the fs
// entry does not exist, is empty or is not a directory.
func ParseProfileDir(profile string) (string, error) {
	if profile == "" {
		return "", os.ErrInvalid
	}

	dir := profile
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(cwd, dir)
	}

	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return "", err
	}

	if r, err := os.Stat(resolved); err != nil {
		return "", err
	} else if !r.IsDir() {
		return "", os.ErrInvalid
	}

	return resolved, nil
}
