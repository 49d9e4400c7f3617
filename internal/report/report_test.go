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

package report_test

import (
	"errors"
	"strings"
	"testing"

	. "fillmore-labs.com/initguard/internal/report"
)

func TestPrint(t *testing.T) {
	t.Parallel()

	warnings := []Warning{
		{File: "a.c", Line: 4, Column: 8, Name: "x"},
		{File: "a.c", Line: 22, Column: 10, Name: "a"},
	}

	const want = "a.c:4:8: warning: use of possibly uninitialized variable 'x'\n" +
		"a.c:22:10: warning: use of possibly uninitialized variable 'a'\n"

	var out strings.Builder
	if err := Print(&out, warnings); err != nil {
		t.Fatalf("Print failed: %v", err)
	}

	if got := out.String(); got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestPrintEmpty(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	if err := Print(&out, nil); err != nil {
		t.Fatalf("Print failed: %v", err)
	}

	if out.Len() != 0 {
		t.Errorf("Print() wrote %q for no warnings", out.String())
	}
}

var errWrite = errors.New("write failed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestPrintError(t *testing.T) {
	t.Parallel()

	err := Print(failingWriter{}, []Warning{{File: "a.c", Line: 1, Name: "x"}})
	if !errors.Is(err, errWrite) {
		t.Errorf("Print() error = %v, want %v", err, errWrite)
	}
}
