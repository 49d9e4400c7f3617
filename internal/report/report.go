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

// Package report formats and prints the warnings of a checked file.
package report

import (
	"fmt"
	"io"
)

// Warning is a possible read of a variable not yet known to be initialized.
type Warning struct {
	File string

	// Line is 1-based.
	Line int

	// Column is the zero-based character offset in the trimmed line.
	Column int

	// Name is the variable read.
	Name string

	// Offset is the byte offset of the read in the file content.
	Offset int
}

// Message returns the diagnostic text of the warning.
func (w Warning) Message() string {
	return fmt.Sprintf("use of possibly uninitialized variable '%s'", w.Name)
}

// String formats the warning as "<file>:<line>:<column>: warning: <message>".
func (w Warning) String() string {
	return fmt.Sprintf("%s:%d:%d: warning: %s", w.File, w.Line, w.Column, w.Message())
}

// Print writes one line per warning in order. Nothing is written for an empty list.
func Print(w io.Writer, warnings []Warning) error {
	for _, warning := range warnings {
		if _, err := fmt.Fprintln(w, warning); err != nil {
			return err
		}
	}

	return nil
}
