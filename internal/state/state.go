// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package state

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tfctl/brewdiff/internal/log"
	"github.com/tfctl/brewdiff/internal/set"
	"github.com/tfctl/brewdiff/internal/sysquery"
)

var (
	// ErrCommandFailed means an external query could not be spawned.
	ErrCommandFailed = errors.New("command execution failed")

	// ErrInvalidOutput means an external query wrote something that is not
	// valid UTF-8 text.
	ErrInvalidOutput = errors.New("command output is not valid UTF-8")
)

// UnknownVersion is recorded for a package listed without any version.
const UnknownVersion = "unknown"

// DefaultBrewPaths are the recognized Homebrew install locations, in priority
// order.
var DefaultBrewPaths = []string{
	"/opt/homebrew/bin/brew",
	"/usr/local/bin/brew",
	"/home/linuxbrew/.linuxbrew/bin/brew",
}

// State is what is actually installed at query time.
type State struct {
	Formulae set.VersionMap
	Casks    set.VersionMap
	Taps     set.NameSet
	MasApps  set.NameSet
}

// Empty returns a State with nothing installed.
func Empty() State {
	return State{
		Formulae: set.VersionMap{},
		Casks:    set.VersionMap{},
		Taps:     set.NewNameSet(),
		MasApps:  set.NewNameSet(),
	}
}

// Collector queries the host for the current State.
type Collector struct {
	// Querier runs commands and probes paths. Nil means sysquery.Exec.
	Querier sysquery.Querier

	// BrewPaths overrides DefaultBrewPaths when non-empty.
	BrewPaths []string

	// AppStore enables the mas query.
	AppStore bool
}

// Detect queries brew (and mas) and assembles the State. A host without brew
// yields an empty State and no error.
func (c *Collector) Detect(ctx context.Context) (State, error) {
	brew, ok := c.brewCommand()
	if !ok {
		log.Debugf("homebrew not found in %v", c.brewPaths())
		return Empty(), nil
	}
	log.Debugf("homebrew found: %s", brew)

	st := Empty()
	var err error

	if st.Formulae, err = c.installedFormulae(ctx, brew); err != nil {
		return State{}, err
	}
	if st.Casks, err = c.installedCasks(ctx, brew); err != nil {
		return State{}, err
	}
	if st.Taps, err = c.taps(ctx, brew); err != nil {
		return State{}, err
	}
	if c.AppStore {
		if st.MasApps, err = c.masApps(ctx); err != nil {
			return State{}, err
		}
	}

	log.Debugf("state: formulae=%d casks=%d taps=%d mas=%d",
		len(st.Formulae), len(st.Casks), st.Taps.Len(), st.MasApps.Len())

	return st, nil
}

func (c *Collector) querier() sysquery.Querier {
	if c.Querier == nil {
		return sysquery.Exec{}
	}
	return c.Querier
}

func (c *Collector) brewPaths() []string {
	if len(c.BrewPaths) > 0 {
		return c.BrewPaths
	}
	return DefaultBrewPaths
}

// brewCommand returns the first recognized brew executable.
func (c *Collector) brewCommand() (string, bool) {
	for _, p := range c.brewPaths() {
		if c.querier().Exists(p) {
			return p, true
		}
	}
	return "", false
}

// query runs one external command. ok is false when the command ran but
// exited non-zero, which callers treat as an empty result.
func (c *Collector) query(ctx context.Context, name string, args ...string) (string, bool, error) {
	line := strings.Join(append([]string{name}, args...), " ")

	res, err := c.querier().Run(ctx, name, args...)
	if err != nil {
		return "", false, fmt.Errorf("%w: %s: %w", ErrCommandFailed, line, err)
	}

	if !res.Success() {
		log.Debugf("query exited %d, treating as empty: %s", res.ExitCode, line)
		return "", false, nil
	}

	if !utf8.Valid(res.Stdout) {
		return "", false, fmt.Errorf("%w: %s", ErrInvalidOutput, line)
	}

	return string(res.Stdout), true, nil
}

// installedFormulae lists only leaves, the formulae that were explicitly
// installed, so dependencies never show up as removals.
func (c *Collector) installedFormulae(ctx context.Context, brew string) (set.VersionMap, error) {
	out, ok, err := c.query(ctx, brew, "leaves")
	if err != nil || !ok {
		return set.VersionMap{}, err
	}

	var leaves []string
	for _, line := range strings.Split(out, "\n") {
		if leaf := strings.TrimSpace(line); leaf != "" {
			leaves = append(leaves, leaf)
		}
	}
	if len(leaves) == 0 {
		return set.VersionMap{}, nil
	}

	out, ok, err = c.query(ctx, brew, append([]string{"list", "--versions"}, leaves...)...)
	if err != nil || !ok {
		return set.VersionMap{}, err
	}

	return ParseVersions(out), nil
}

func (c *Collector) installedCasks(ctx context.Context, brew string) (set.VersionMap, error) {
	out, ok, err := c.query(ctx, brew, "list", "--cask", "--versions")
	if err != nil || !ok {
		return set.VersionMap{}, err
	}
	return ParseVersions(out), nil
}

func (c *Collector) taps(ctx context.Context, brew string) (set.NameSet, error) {
	out, ok, err := c.query(ctx, brew, "tap")
	if err != nil || !ok {
		return set.NewNameSet(), err
	}

	taps := set.NewNameSet()
	for _, line := range strings.Split(out, "\n") {
		if tap := strings.TrimSpace(line); tap != "" {
			taps.Add(tap)
		}
	}
	return taps, nil
}

func (c *Collector) masApps(ctx context.Context) (set.NameSet, error) {
	mas, found := c.querier().LookPath("mas")
	if !found {
		log.Debug("mas not installed, skipping App Store apps")
		return set.NewNameSet(), nil
	}

	out, ok, err := c.query(ctx, mas, "list")
	if err != nil || !ok {
		return set.NewNameSet(), err
	}
	return ParseMasList(out), nil
}

// ParseVersions parses "name [version...]" lines as printed by
// `brew list --versions`. Multiple versions are joined with single spaces.
func ParseVersions(out string) set.VersionMap {
	result := set.VersionMap{}
	for _, line := range strings.Split(out, "\n") {
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		version := UnknownVersion
		if len(parts) > 1 {
			version = strings.Join(parts[1:], " ")
		}
		result[parts[0]] = version
	}
	return result
}

// ParseMasList parses `mas list` rows of the form "<id> <name...> (<version>)"
// into "<name> (<id>)" entries, which is how intent records App Store apps.
func ParseMasList(out string) set.NameSet {
	apps := set.NewNameSet()
	for _, line := range strings.Split(out, "\n") {
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}

		id := parts[0]
		nameParts := parts[1:]
		for i := len(parts) - 1; i >= 1; i-- {
			if strings.HasPrefix(parts[i], "(") {
				nameParts = parts[1:i]
				break
			}
		}
		apps.Add(fmt.Sprintf("%s (%s)", strings.Join(nameParts, " "), id))
	}
	return apps
}
