// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// setupTestConfig sets BREWDIFF_CFG_FILE to point to a test config file.
// Returns cleanup function that should be deferred.
func setupTestConfig(t *testing.T, testdataFile string) (cleanup func()) {
	t.Helper()

	configPath := filepath.Join("testdata", testdataFile)
	absPath, err := filepath.Abs(configPath)
	assert.NoError(t, err, "failed to get absolute path for test config")

	t.Setenv("BREWDIFF_CFG_FILE", absPath)

	// Reset the global Config to force reload
	Config = Type{}

	return func() {
		Config = Type{}
	}
}

// withConfig is a helper that sets up a test config and executes a test function.
func withConfig(t *testing.T, testFile string, fn func(t *testing.T)) {
	t.Helper()
	cleanup := setupTestConfig(t, testFile)
	defer cleanup()
	_, _ = Load()
	fn(t)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		testFile  string
		checkFunc func(*testing.T, Type)
	}{
		{
			name:     "simple string values",
			testFile: "simple.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source)
				assert.Equal(t, "/run/current-system", cfg.Data["profile"])
				assert.Equal(t, "grouped", cfg.Data["format"])
			},
		},
		{
			name:     "nested structure",
			testFile: "nested.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				diff, ok := cfg.Data["diff"].(map[string]interface{})
				assert.True(t, ok, "diff should be a map")
				assert.Equal(t, "blocks", diff["format"])
			},
		},
		{
			name:     "empty file",
			testFile: "empty.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				// Empty YAML unmarshals to nil map, which is acceptable
				assert.NotEmpty(t, cfg.Source, "should have a source path")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := setupTestConfig(t, tt.testFile)
			defer cleanup()

			cfg, err := Load()
			assert.NoError(t, err)
			tt.checkFunc(t, cfg)
		})
	}
}

func TestLoad_ExplicitPathWins(t *testing.T) {
	cleanup := setupTestConfig(t, "simple.yaml")
	defer cleanup()

	cfg, err := Load(filepath.Join("testdata", "nested.yaml"))
	assert.NoError(t, err)
	assert.Contains(t, cfg.Source, "nested.yaml")
}

func TestLoad_NoConfigFile(t *testing.T) {
	t.Setenv("BREWDIFF_CFG_FILE", "/nonexistent/path/brewdiff.yaml")
	Config = Type{}

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoad_CfgFileIsDirectory(t *testing.T) {
	t.Setenv("BREWDIFF_CFG_FILE", "testdata")
	Config = Type{}

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "points to a directory")
}

func TestGetString(t *testing.T) {
	tests := []struct {
		name         string
		testFile     string
		key          string
		defaultValue []string
		want         string
		wantErr      bool
	}{
		{name: "simple string value", testFile: "simple.yaml", key: "profile", want: "/run/current-system"},
		{name: "nested string value", testFile: "nested.yaml", key: "colors.added", want: "#00ff00"},
		{name: "missing key with default", testFile: "simple.yaml", key: "missing", defaultValue: []string{"fallback"}, want: "fallback"},
		{name: "missing key without default", testFile: "simple.yaml", key: "missing", wantErr: true},
		{name: "non-string value", testFile: "mixed-types.yaml", key: "version", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withConfig(t, tt.testFile, func(t *testing.T) {
				got, err := GetString(tt.key, tt.defaultValue...)
				if tt.wantErr {
					assert.Error(t, err)
					return
				}
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		})
	}
}

func TestGetBool(t *testing.T) {
	withConfig(t, "mixed-types.yaml", func(t *testing.T) {
		got, err := GetBool("enabled")
		assert.NoError(t, err)
		assert.True(t, got)

		got, err = GetBool("missing", true)
		assert.NoError(t, err)
		assert.True(t, got)

		_, err = GetBool("name")
		assert.Error(t, err)
	})
}

func TestGetStringSlice(t *testing.T) {
	withConfig(t, "nested.yaml", func(t *testing.T) {
		got, err := GetStringSlice("brew.paths")
		assert.NoError(t, err)
		assert.Equal(t, []string{"/opt/homebrew/bin/brew", "/usr/local/bin/brew"}, got)

		got, err = GetStringSlice("brew.missing", []string{"x"})
		assert.NoError(t, err)
		assert.Equal(t, []string{"x"}, got)
	})

	withConfig(t, "mixed-types.yaml", func(t *testing.T) {
		_, err := GetStringSlice("bad_paths")
		assert.Error(t, err)

		_, err = GetStringSlice("name")
		assert.Error(t, err)
	})
}

func TestConfig_GetWithNamespace(t *testing.T) {
	withConfig(t, "nested.yaml", func(t *testing.T) {
		Config.Namespace = "diff"

		// Namespaced value wins over the top-level one.
		val, err := Config.get("color")
		assert.NoError(t, err)
		assert.Equal(t, true, val)

		// Falls back to the top-level key.
		val, err = Config.get("profile")
		assert.NoError(t, err)
		assert.Equal(t, "/run/current-system", val)

		Config.Namespace = ""
		val, err = Config.get("color")
		assert.NoError(t, err)
		assert.Equal(t, false, val)
	})
}

func TestConfig_Get(t *testing.T) {
	withConfig(t, "mixed-types.yaml", func(t *testing.T) {
		_, err := Config.get("nonexistent.nested.path")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no valid path found")

		_, err = Config.get("version.something")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no valid path found")
	})
}
