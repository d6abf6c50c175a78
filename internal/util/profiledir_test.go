// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// chdir switches to dir for the remainder of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldCwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get cwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(oldCwd)
	})
}

func TestParseProfileDir(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T) (profile string, want string)
		wantErr bool
		errIs   error
	}{
		{
			name: "absolute_path",
			setup: func(t *testing.T) (string, string) {
				dir, _ := filepath.EvalSymlinks(t.TempDir())
				return dir, dir
			},
		},
		{
			name: "relative_path",
			setup: func(t *testing.T) (string, string) {
				dir, _ := filepath.EvalSymlinks(t.TempDir())
				chdir(t, filepath.Dir(dir))
				return filepath.Base(dir), dir
			},
		},
		{
			name: "dot_relative_path",
			setup: func(t *testing.T) (string, string) {
				dir, _ := filepath.EvalSymlinks(t.TempDir())
				chdir(t, dir)
				return ".", dir
			},
		},
		{
			name: "symlinked_profile",
			setup: func(t *testing.T) (string, string) {
				base, _ := filepath.EvalSymlinks(t.TempDir())
				store := filepath.Join(base, "store", "abc-darwin-system")
				if err := os.MkdirAll(store, 0o755); err != nil {
					t.Fatalf("failed to create store dir: %v", err)
				}
				link := filepath.Join(base, "current-system")
				if err := os.Symlink(store, link); err != nil {
					t.Fatalf("failed to symlink: %v", err)
				}
				return link, store
			},
		},
		{
			name: "nonexistent_directory",
			setup: func(t *testing.T) (string, string) {
				return "/nonexistent/path/that/does/not/exist", ""
			},
			wantErr: true,
			errIs:   os.ErrNotExist,
		},
		{
			name: "file_not_directory",
			setup: func(t *testing.T) (string, string) {
				tmpFile := filepath.Join(t.TempDir(), "activate")
				if err := os.WriteFile(tmpFile, []byte("#!/bin/sh"), 0o600); err != nil {
					t.Fatalf("failed to create temp file: %v", err)
				}
				return tmpFile, ""
			},
			wantErr: true,
			errIs:   os.ErrInvalid,
		},
		{
			name: "empty_profile",
			setup: func(t *testing.T) (string, string) {
				return "", ""
			},
			wantErr: true,
			errIs:   os.ErrInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, want := tt.setup(t)

			dir, err := ParseProfileDir(profile)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.errIs != nil {
					assert.ErrorIs(t, err, tt.errIs)
				}
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, want, dir)
		})
	}
}
