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

// Package scan implements the per-line heuristics of the uninitialized variable check.
//
// Each non-empty line passes three stages in order:
//
//   - Declarations: a line containing a primitive type keyword and a ";" or ","
//     registers every identifier after the keyword. An identifier directly followed
//     by "=", "(" or "[" starts out initialized.
//   - Assignments: an identifier followed by a single "=" marks the variable initialized.
//     Compound assignments like "+=" do not.
//   - Uses: every occurrence of a still uninitialized variable that is not the
//     left-hand side of an assignment is reported.
//
// All matching is lexical. There is no scoping, no control flow and no preprocessor.
package scan
