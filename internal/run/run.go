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

// Package run drives the per-file check and the batch over several files.
package run

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime/trace"

	"fillmore-labs.com/initguard/internal/report"
	"fillmore-labs.com/initguard/internal/scan"
	"fillmore-labs.com/initguard/internal/source"
	"fillmore-labs.com/initguard/internal/table"
)

// ErrUnreadable is returned when a file cannot be opened or read.
var ErrUnreadable = errors.New("cannot open file")

// Checker checks files for uses of possibly uninitialized variables.
type Checker struct {
	logger *slog.Logger
}

// New creates a [Checker]. A nil logger discards all messages.
func New(logger *slog.Logger) *Checker {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Checker{logger: logger}
}

// Check scans the lines of one file with a fresh variable table and returns the warnings in discovery order.
func (c *Checker) Check(ctx context.Context, file string, lines []source.Line) []report.Warning {
	ctx, task := trace.NewTask(ctx, "Check")
	defer task.End()

	trace.Log(ctx, "file", file)

	s := scan.New(table.New(), c.logger.With(slog.String("file", file)))

	var warnings []report.Warning

	for _, line := range lines {
		if line.Empty() {
			continue
		}

		for _, use := range s.Line(ctx, line.Text, line.Number) {
			warnings = append(warnings, report.Warning{
				File:   file,
				Line:   line.Number,
				Column: use.Column,
				Name:   use.Name,
				Offset: line.Start + line.Indent + use.Offset,
			})
		}
	}

	tab := s.Table()

	uninitialized := 0
	for v := range tab.All() {
		if !v.Initialized {
			uninitialized++
		}
	}

	c.logger.LogAttrs(ctx, slog.LevelDebug, "checked file",
		slog.String("file", file), slog.Int("lines", len(lines)), slog.Int("warnings", len(warnings)),
		slog.Int("variables", tab.Len()), slog.Int("uninitialized", uninitialized))

	return warnings
}

// CheckFile reads and checks the file at path.
// Read failures are reported wrapping [ErrUnreadable].
func (c *Checker) CheckFile(ctx context.Context, path string) ([]report.Warning, error) {
	_, lines, err := source.ReadFile(path)
	if err != nil {
		c.logger.LogAttrs(ctx, slog.LevelDebug, "can't read file", slog.String("file", path), slog.Any("error", err))

		return nil, fmt.Errorf("%w %s: %w", ErrUnreadable, path, err)
	}

	return c.Check(ctx, path, lines), nil
}

// Batch checks the files in order and prints the warnings of each file to w once it is done.
// Unreadable files are reported inline and do not stop the batch; only write errors are returned.
func (c *Checker) Batch(ctx context.Context, w io.Writer, paths []string) error {
	for _, path := range paths {
		warnings, err := c.CheckFile(ctx, path)
		if err != nil {
			if !errors.Is(err, ErrUnreadable) {
				return err
			}

			if _, err := fmt.Fprintf(w, "Error: Cannot open file %s\n", path); err != nil {
				return err
			}

			continue
		}

		if err := report.Print(w, warnings); err != nil {
			return err
		}
	}

	return nil
}
