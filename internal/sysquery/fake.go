// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package sysquery

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Fake is a fixture-driven Querier. Commands are keyed by their full command
// line ("brew list --cask --versions"). Unknown commands fail to spawn.
type Fake struct {
	Paths    map[string]bool
	Binaries map[string]string
	Results  map[string]Result
	Errors   map[string]error

	mu    sync.Mutex
	Calls []string
}

var _ Querier = (*Fake)(nil)

// Run returns the fixture registered for the command line.
func (f *Fake) Run(_ context.Context, name string, args ...string) (Result, error) {
	line := strings.Join(append([]string{name}, args...), " ")

	f.mu.Lock()
	f.Calls = append(f.Calls, line)
	f.mu.Unlock()

	if err, ok := f.Errors[line]; ok {
		return Result{}, err
	}
	if res, ok := f.Results[line]; ok {
		return res, nil
	}
	return Result{}, fmt.Errorf("exec: %q: executable file not found", name)
}

// Exists reports whether path was registered.
func (f *Fake) Exists(path string) bool {
	return f.Paths[path]
}

// LookPath returns the registered location of file.
func (f *Fake) LookPath(file string) (string, bool) {
	p, ok := f.Binaries[file]
	return p, ok
}

// Called reports whether the command line was run.
func (f *Fake) Called(line string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.Calls {
		if c == line {
			return true
		}
	}
	return false
}

// Output is a convenience for a successful Result with stdout.
func Output(stdout string) Result {
	return Result{Stdout: []byte(stdout)}
}
