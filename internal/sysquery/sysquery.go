// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package sysquery

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/tfctl/brewdiff/internal/log"
)

// Result is the outcome of a command that was spawned successfully.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Success reports whether the command exited with status 0.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Querier abstracts the host for state collection.
//
// Run returns an error only when the command could not be spawned at all. A
// command that ran and exited non-zero yields a Result with that ExitCode and a
// nil error.
type Querier interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
	Exists(path string) bool
	LookPath(file string) (string, bool)
}

// Exec is the Querier backed by os/exec and the local filesystem.
type Exec struct{}

var _ Querier = Exec{}

// Run executes name with args and captures stdout and stderr.
func (Exec) Run(ctx context.Context, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Tracef("exec: %s %s", name, strings.Join(args, " "))

	err := cmd.Run()
	res := Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err == nil {
		return res, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		log.Debugf("exec exit status %d: %s %s", res.ExitCode, name, strings.Join(args, " "))
		return res, nil
	}

	return res, err
}

// Exists reports whether path exists.
func (Exec) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// LookPath searches PATH for file.
func (Exec) LookPath(file string) (string, bool) {
	p, err := exec.LookPath(file)
	if err != nil {
		return "", false
	}
	return p, true
}
