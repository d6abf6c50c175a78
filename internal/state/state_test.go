// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package state

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/brewdiff/internal/set"
	"github.com/tfctl/brewdiff/internal/sysquery"
)

const brew = "/opt/homebrew/bin/brew"

// newFake returns a host with brew at the Apple Silicon location and a
// typical set of query fixtures.
func newFake() *sysquery.Fake {
	return &sysquery.Fake{
		Paths:    map[string]bool{brew: true},
		Binaries: map[string]string{"mas": "/opt/homebrew/bin/mas"},
		Results: map[string]sysquery.Result{
			brew + " leaves":                   sysquery.Output("wget\ngit\n"),
			brew + " list --versions wget git": sysquery.Output("wget 1.21.3\ngit 2.42.0 2.41.0\n"),
			brew + " list --cask --versions":   sysquery.Output("firefox 120.0\nvisual-studio-code 1.84.2\n"),
			brew + " tap":                      sysquery.Output("homebrew/bundle\nhomebrew/core\n\n"),
			"/opt/homebrew/bin/mas list":       sysquery.Output("497799835  Xcode          (15.0.1)\n1333542190  1Password 7 - Password Manager  (7.9.11)\n"),
		},
	}
}

func TestDetect(t *testing.T) {
	c := &Collector{Querier: newFake(), AppStore: true}

	st, err := c.Detect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, set.VersionMap{"wget": "1.21.3", "git": "2.42.0 2.41.0"}, st.Formulae)
	assert.Equal(t, set.VersionMap{"firefox": "120.0", "visual-studio-code": "1.84.2"}, st.Casks)
	assert.Equal(t, []string{"homebrew/bundle", "homebrew/core"}, st.Taps.Sorted())
	assert.Equal(t, []string{"1Password 7 - Password Manager (1333542190)", "Xcode (497799835)"}, st.MasApps.Sorted())
}

func TestDetect_NoHomebrew(t *testing.T) {
	f := &sysquery.Fake{}
	c := &Collector{Querier: f, AppStore: true}

	st, err := c.Detect(context.Background())
	require.NoError(t, err)
	assert.Empty(t, st.Formulae)
	assert.Empty(t, st.Casks)
	assert.Equal(t, 0, st.Taps.Len())
	assert.Equal(t, 0, st.MasApps.Len())
	assert.Empty(t, f.Calls, "nothing should be run without brew")
}

func TestDetect_IntelPathFallback(t *testing.T) {
	f := newFake()
	f.Paths = map[string]bool{"/usr/local/bin/brew": true}
	f.Results["/usr/local/bin/brew tap"] = sysquery.Output("homebrew/core\n")
	f.Results["/usr/local/bin/brew leaves"] = sysquery.Output("")
	f.Results["/usr/local/bin/brew list --cask --versions"] = sysquery.Output("")

	st, err := (&Collector{Querier: f}).Detect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"homebrew/core"}, st.Taps.Sorted())
	assert.Empty(t, st.Formulae)
	assert.False(t, f.Called("/usr/local/bin/brew list --versions"), "empty leaves skip the versions query")
}

func TestDetect_CustomBrewPaths(t *testing.T) {
	f := newFake()
	c := &Collector{Querier: f, BrewPaths: []string{"/custom/brew"}}

	st, err := c.Detect(context.Background())
	require.NoError(t, err)
	assert.Empty(t, st.Formulae)
	assert.Empty(t, f.Calls)
}

func TestDetect_NonZeroExitIsEmpty(t *testing.T) {
	f := newFake()
	f.Results[brew+" tap"] = sysquery.Result{ExitCode: 1, Stderr: []byte("Error: boom")}
	f.Results[brew+" list --versions wget git"] = sysquery.Result{ExitCode: 1}

	st, err := (&Collector{Querier: f}).Detect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, st.Taps.Len())
	assert.Empty(t, st.Formulae)
	assert.Len(t, st.Casks, 2, "other categories are unaffected")
}

func TestDetect_SpawnFailureIsFatal(t *testing.T) {
	f := newFake()
	f.Errors = map[string]error{brew + " list --cask --versions": errors.New("fork/exec: permission denied")}

	_, err := (&Collector{Querier: f}).Detect(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCommandFailed)
	assert.Contains(t, err.Error(), "list --cask --versions")
	assert.Contains(t, err.Error(), "permission denied")
}

func TestDetect_InvalidUTF8(t *testing.T) {
	f := newFake()
	f.Results[brew+" tap"] = sysquery.Result{Stdout: []byte{0xff, 0xfe, '\n'}}

	_, err := (&Collector{Querier: f}).Detect(context.Background())
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestDetect_AppStore(t *testing.T) {
	t.Run("disabled never runs mas", func(t *testing.T) {
		f := newFake()
		st, err := (&Collector{Querier: f}).Detect(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, st.MasApps.Len())
		assert.False(t, f.Called("/opt/homebrew/bin/mas list"))
	})

	t.Run("mas not installed", func(t *testing.T) {
		f := newFake()
		f.Binaries = nil
		st, err := (&Collector{Querier: f, AppStore: true}).Detect(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, st.MasApps.Len())
	})

	t.Run("mas exits non-zero", func(t *testing.T) {
		f := newFake()
		f.Results["/opt/homebrew/bin/mas list"] = sysquery.Result{ExitCode: 1}
		st, err := (&Collector{Querier: f, AppStore: true}).Detect(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, st.MasApps.Len())
	})
}

func TestParseVersions(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  set.VersionMap
	}{
		{
			name:  "single and multiple versions",
			input: "wget 1.21.3\ncurl 8.4.0\ngit 2.42.0 2.41.0\n",
			want:  set.VersionMap{"wget": "1.21.3", "curl": "8.4.0", "git": "2.42.0 2.41.0"},
		},
		{
			name:  "empty output",
			input: "",
			want:  set.VersionMap{},
		},
		{
			name:  "name without version",
			input: "jq\n",
			want:  set.VersionMap{"jq": UnknownVersion},
		},
		{
			name:  "blank lines and extra whitespace",
			input: "\n  htop   3.2.2  \n\n",
			want:  set.VersionMap{"htop": "3.2.2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseVersions(tt.input))
		})
	}
}

func TestParseMasList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "typical rows",
			input: "497799835  Xcode  (15.0.1)\n409183694   Keynote (13.2)\n",
			want:  []string{"Keynote (409183694)", "Xcode (497799835)"},
		},
		{
			name:  "multi-word name",
			input: "1295203466  Microsoft Remote Desktop  (10.9.4)\n",
			want:  []string{"Microsoft Remote Desktop (1295203466)"},
		},
		{
			name:  "no version column",
			input: "123  Some App\n",
			want:  []string{"Some App (123)"},
		},
		{
			name:  "id only is skipped",
			input: "123\n\n",
			want:  []string{},
		},
		{
			name:  "no name keeps the id",
			input: "123 (1.0)\n456  Foo Bar  (2.0)\n",
			want:  []string{" (123)", "Foo Bar (456)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMasList(tt.input).Sorted())
		})
	}
}
