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

	"fillmore-labs.com/initguard/internal/lexer"
)

// Assign marks every tracked variable that is the target of a plain assignment in the line as initialized.
//
// "==", "!=", "<=" and ">=" are no assignments. Compound assignments such as "+=" are not recognized either.
func (s *Scanner) Assign(ctx context.Context, tokens lexer.Tokens, number int) {
	for i, tok := range tokens {
		if tok.Kind != lexer.Word || !tokens.BareAssign(i) {
			continue
		}

		name := assignTarget(tok.Value)
		if name == "" || !s.table.MarkInitialized(name) {
			continue
		}

		s.logger.LogAttrs(ctx, slog.LevelDebug, "initialized variable",
			slog.String("name", name), slog.Int("line", number))
	}
}
