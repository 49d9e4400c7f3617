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
	"strings"

	"fillmore-labs.com/initguard/internal/lexer"
)

// IsDeclaration reports whether a line is declaration-shaped: it contains a primitive type keyword
// as a whole word that is not part of a cast, and a statement terminator or list separator.
//
// Function prototypes and struct members look the same, declarations spanning lines are not detected.
func IsDeclaration(line string) bool {
	if !strings.ContainsAny(line, ";,") {
		return false
	}

	for _, keyword := range declarationKeywords {
		if containsWord(line, keyword) && !castOf(line, keyword) {
			return true
		}
	}

	return false
}

// TypeKeyword returns the longest type keyword present in line as a whole word.
func TypeKeyword(line string) (string, bool) {
	for _, keyword := range typeKeywords {
		if containsWord(line, keyword) {
			return keyword, true
		}
	}

	return "", false
}

// Declaration is a variable registered by a declaration line.
type Declaration struct {
	Name        string
	Initialized bool

	// Offset is the byte offset of the declaring occurrence in the line.
	Offset int
}

// Declare registers the variables of a declaration-shaped line and returns the declarations added.
//
// Every identifier after the first occurrence of the type keyword counts as a declared name.
// Names already present in the table are skipped.
func (s *Scanner) Declare(ctx context.Context, line string, number int) []Declaration {
	keyword, ok := TypeKeyword(line)
	if !ok {
		return nil
	}

	start := strings.Index(line, keyword) + len(keyword)
	tokens := lexer.Split(line[start:])

	var added []Declaration

	for i, tok := range tokens {
		if tok.Kind != lexer.Word || !isIdentifier(tok.Value) {
			continue
		}

		initialized := false
		if next, ok := tokens.Next(i); ok {
			switch next.Value {
			case "=", "(", "[":
				initialized = true
			}
		}

		if !s.table.Declare(tok.Value, initialized, number) {
			continue
		}

		s.logger.LogAttrs(ctx, slog.LevelDebug, "declared variable",
			slog.String("name", tok.Value), slog.Int("line", number), slog.Bool("initialized", initialized))

		added = append(added, Declaration{Name: tok.Value, Initialized: initialized, Offset: start + tok.Offset})
	}

	return added
}
