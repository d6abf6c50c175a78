// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tfctl/brewdiff/internal/command"
	"github.com/tfctl/brewdiff/internal/log"
	"github.com/tfctl/brewdiff/internal/version"
)

// Exit codes.
const (
	exitOK      = 0
	exitInit    = 1
	exitFailed  = 2
	exitChanges = 3
)

var ctx = context.Background()

func main() {
	os.Exit(realMain(os.Args, os.Stdout, os.Stderr))
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string, stdout io.Writer) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Fprintln(stdout, version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string, stdout, stderr io.Writer) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		log.Debugf("app init err: err=%v", err)
		return exitInit
	}
	app.Writer = stdout
	app.ErrWriter = stderr

	if err := app.Run(ctx, args); err != nil {
		if errors.Is(err, command.ErrChangesDetected) {
			return exitChanges
		}
		fmt.Fprintln(stderr, err)
		log.Debugf("app run err: err=%v", err)
		return exitFailed
	}

	return exitOK
}

func realMain(args []string, stdout, stderr io.Writer) int {
	log.InitLogger()

	log.Debugf("args captured: args=%v", args)

	if handleVersion(args, stdout) {
		return exitOK
	}

	args = handleNakedCommand(args)

	return initAndRunApp(args, stdout, stderr)
}
