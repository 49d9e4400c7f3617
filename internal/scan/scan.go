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

package scan

import (
	"context"
	"log/slog"
	"runtime/trace"

	"fillmore-labs.com/initguard/internal/lexer"
	"fillmore-labs.com/initguard/internal/table"
)

// Use is a read of a possibly uninitialized variable.
type Use struct {
	Name string

	// Column is the zero-based character offset in the scanned line.
	Column int

	// Offset is the byte offset in the scanned line.
	Offset int
}

// Scanner applies the line stages to a variable table.
type Scanner struct {
	table  *table.Table
	logger *slog.Logger
}

// New creates a [Scanner] operating on tab. A nil logger discards all messages.
func New(tab *table.Table, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Scanner{table: tab, logger: logger}
}

// Table returns the variable table of the scanner.
func (s *Scanner) Table() *table.Table {
	return s.table
}

// Line runs all stages on a trimmed, comment-free line and returns the uses found, left to right.
func (s *Scanner) Line(ctx context.Context, text string, number int) []Use {
	if text == "" {
		return nil
	}

	defer trace.StartRegion(ctx, "ScanLine").End()

	var declared []Declaration
	if IsDeclaration(text) {
		declared = s.Declare(ctx, text, number)
	}

	tokens := lexer.Split(text)

	s.Assign(ctx, tokens, number)

	return s.Uses(tokens, declared)
}
