// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Command initguard reports uses of possibly uninitialized variables in C-like source files.
//
// Usage:
//
//	initguard <source_file> [<source_file2> ...]
//
// Files are checked in argument order, each with its own variable table.
// Warnings are printed to standard output once a file is done:
//
//	<file>:<line>:<column>: warning: use of possibly uninitialized variable '<name>'
//
// A file that can't be opened is reported as "Error: Cannot open file <path>" and skipped.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"fillmore-labs.com/initguard/internal/run"
)

const (
	name      = "initguard"
	argsUsage = "<source_file> [<source_file2> ...]"
)

func main() {
	os.Exit(execute(os.Args, os.Stdout, os.Stderr))
}

// execute runs the command line and returns the process exit status.
func execute(args []string, stdout, stderr io.Writer) int {
	err := newApp(stdout, stderr).Run(args)
	if err == nil {
		return 0
	}

	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		if msg := exitErr.Error(); msg != "" {
			_, _ = fmt.Fprintln(stderr, msg)
		}

		return exitErr.ExitCode()
	}

	_, _ = fmt.Fprintln(stderr, color.RedString("Error: %v", err))

	return 1
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:            name,
		Usage:           "report uses of possibly uninitialized variables in C-like sources",
		ArgsUsage:       argsUsage,
		HideHelp:        true,
		HideHelpCommand: true,
		SkipFlagParsing: true,
		Writer:          stdout,
		ErrWriter:       stderr,
		ExitErrHandler:  func(*cli.Context, error) {}, // exit status is handled by execute
		Action:          check,
	}
}

func check(c *cli.Context) error {
	if c.NArg() == 0 {
		printUsage(c.App.Writer)

		return cli.Exit("", 1)
	}

	logger := slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: slog.LevelWarn}))

	return run.New(logger).Batch(c.Context, c.App.Writer, c.Args().Slice())
}

func printUsage(w io.Writer) {
	bold := color.New(color.Bold).SprintFunc()
	_, _ = fmt.Fprintln(w, bold("Usage:"), name, argsUsage)
}
