// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package intent

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/tfctl/brewdiff/internal/log"
	"github.com/tfctl/brewdiff/internal/set"
)

var (
	// ErrNoActivationScript means the profile has no activate script.
	ErrNoActivationScript = errors.New("activation script not found")

	// ErrBrewfileNotReferenced means the activate script never runs
	// `brew bundle --file=...`.
	ErrBrewfileNotReferenced = errors.New("brewfile not found in activation script")

	// ErrManifestParse means the referenced Brewfile is missing or unreadable.
	ErrManifestParse = errors.New("failed to parse brewfile")
)

// ActivationScript is the file name of the activation script inside a
// profile.
const ActivationScript = "activate"

// Intent is what the profile declares should be installed.
type Intent struct {
	Formulae set.NameSet
	Casks    set.NameSet
	Taps     set.NameSet
	MasApps  set.NameSet // "Name (id)"
}

// Empty returns an Intent that declares nothing.
func Empty() Intent {
	return Intent{
		Formulae: set.NewNameSet(),
		Casks:    set.NewNameSet(),
		Taps:     set.NewNameSet(),
		MasApps:  set.NewNameSet(),
	}
}

// HasPackages reports whether any formulae, casks or App Store apps are
// declared. Taps alone do not count.
func (i Intent) HasPackages() bool {
	return i.Formulae.Len() > 0 || i.Casks.Len() > 0 || i.MasApps.Len() > 0
}

// Equal reports whether both intents declare the same names.
func (i Intent) Equal(other Intent) bool {
	return i.Formulae.Equal(other.Formulae) &&
		i.Casks.Equal(other.Casks) &&
		i.Taps.Equal(other.Taps) &&
		i.MasApps.Equal(other.MasApps)
}

// ReferenceFinder locates the Brewfile path inside activation script text.
type ReferenceFinder interface {
	FindManifest(script string) (string, bool)
}

// BundleReference matches `brew bundle ... --file='<path>Brewfile'`, which is
// how nix-darwin's homebrew module invokes bundle.
type BundleReference struct{}

var bundleRe = regexp.MustCompile(`brew bundle\b[^\n']*--file='([^']+Brewfile)'`)

// FindManifest returns the first referenced Brewfile path.
func (BundleReference) FindManifest(script string) (string, bool) {
	m := bundleRe.FindStringSubmatch(script)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Extractor turns a profile directory into an Intent.
type Extractor struct {
	// Finder locates the Brewfile reference. Nil means BundleReference.
	Finder ReferenceFinder

	// Parser parses the Brewfile. Nil means a BrewfileParser honoring
	// AppStore.
	Parser ManifestParser

	// AppStore enables `mas` entries.
	AppStore bool
}

// Extract reads <profile>/activate, follows its Brewfile reference and parses
// the Brewfile.
func (e *Extractor) Extract(profile string) (Intent, error) {
	brewfile, err := e.Brewfile(profile)
	if err != nil {
		return Intent{}, err
	}
	log.Debugf("brewfile reference: %s", brewfile)

	return e.ParseFile(brewfile)
}

// ParseFile parses the Brewfile at path.
func (e *Extractor) ParseFile(path string) (Intent, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Intent{}, fmt.Errorf("%w: Brewfile not found at: %s", ErrManifestParse, path)
		}
		return Intent{}, fmt.Errorf("%w: %s: %w", ErrManifestParse, path, err)
	}
	defer f.Close()

	in, err := e.parser().Parse(f)
	if err != nil {
		return Intent{}, fmt.Errorf("%w: %s: %w", ErrManifestParse, path, err)
	}

	log.Debugf("intent: formulae=%d casks=%d taps=%d mas=%d",
		in.Formulae.Len(), in.Casks.Len(), in.Taps.Len(), in.MasApps.Len())

	return in, nil
}

// Brewfile returns the Brewfile path referenced by the profile's activation
// script without parsing it.
func (e *Extractor) Brewfile(profile string) (string, error) {
	activate := filepath.Join(profile, ActivationScript)
	content, err := os.ReadFile(activate)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w at %s", ErrNoActivationScript, activate)
		}
		return "", fmt.Errorf("failed to read %s: %w", activate, err)
	}

	brewfile, ok := e.finder().FindManifest(string(content))
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrBrewfileNotReferenced, activate)
	}
	return brewfile, nil
}

func (e *Extractor) finder() ReferenceFinder {
	if e.Finder == nil {
		return BundleReference{}
	}
	return e.Finder
}

func (e *Extractor) parser() ManifestParser {
	if e.Parser == nil {
		return BrewfileParser{AppStore: e.AppStore}
	}
	return e.Parser
}
