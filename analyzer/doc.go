// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

// Package analyzer implements the initguard static analysis pass.
//
// # Overview
//
// InitGuard scans the C and C++ files of a package (the pass' OtherFiles, as
// listed for cgo packages) line by line and reports reads of variables that
// are declared without an initializer and not yet assigned.
//
// # Example
//
//	int next(void) {
//	    int count;
//	    return count + 1;  // use of possibly uninitialized variable 'count'
//	}
//
// # Limitations
//
// The check is a lexical heuristic: there is no scoping, no control flow and
// no preprocessor. Compound assignments such as "count += 1" do not count as
// initialization, declarations spanning several lines are not recognized.
//
// Warnings on a line ending in "//nolint:initguard" are suppressed,
// generated files are skipped unless configured otherwise.
package analyzer
