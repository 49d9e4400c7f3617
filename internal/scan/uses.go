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
	"slices"

	"fillmore-labs.com/initguard/internal/lexer"
)

// Uses returns the reads of uninitialized variables in the line, left to right.
//
// An occurrence followed by a plain "=" is the target of an assignment on the same line and no read.
// The declaring occurrences of this line's declarations are no reads either.
func (s *Scanner) Uses(tokens lexer.Tokens, declared []Declaration) []Use {
	var uses []Use

	for i, tok := range tokens {
		if tok.Kind != lexer.Word || !s.table.Uninitialized(tok.Value) || tokens.BareAssign(i) {
			continue
		}

		if slices.ContainsFunc(declared, func(d Declaration) bool { return d.Offset == tok.Offset }) {
			continue
		}

		uses = append(uses, Use{Name: tok.Value, Column: tok.Column, Offset: tok.Offset})
	}

	return uses
}
