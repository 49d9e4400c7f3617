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

package run_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fillmore-labs.com/initguard/internal/report"
	. "fillmore-labs.com/initguard/internal/run"
	"fillmore-labs.com/initguard/internal/source"
)

func writeFile(tb testing.TB, dir, name, content string) string {
	tb.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		tb.Fatalf("Can't write %s: %v", name, err)
	}

	return path
}

func TestCheck(t *testing.T) {
	t.Parallel()

	const src = "void f() {\n    int x;\n    y = x + 1;\n}\n"

	got := New(nil).Check(context.Background(), "f.c", source.Split([]byte(src)))

	want := []report.Warning{{File: "f.c", Line: 3, Column: 4, Name: "x", Offset: 30}}
	if len(got) != len(want) || got[0] != want[0] {
		t.Errorf("Check() = %+v, want %+v", got, want)
	}
}

func TestCheckFileUnreadable(t *testing.T) {
	t.Parallel()

	_, err := New(nil).CheckFile(context.Background(), filepath.Join(t.TempDir(), "missing.c"))
	if !errors.Is(err, ErrUnreadable) {
		t.Errorf("CheckFile() error = %v, want %v", err, ErrUnreadable)
	}

	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("CheckFile() error = %v, want wrapped %v", err, os.ErrNotExist)
	}
}

func TestBatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.c", "int x;\ny = x + 1;\n")
	good := writeFile(t, dir, "good.c", "int x = 0;\ny = x + 1;\n")
	missing := filepath.Join(dir, "missing.c")

	var out bytes.Buffer
	if err := New(nil).Batch(context.Background(), &out, []string{bad, missing, good}); err != nil {
		t.Fatalf("Batch failed: %v", err)
	}

	want := bad + ":2:4: warning: use of possibly uninitialized variable 'x'\n" +
		"Error: Cannot open file " + missing + "\n"

	if got := out.String(); got != want {
		t.Errorf("Batch() = %q, want %q", got, want)
	}
}

func TestBatchIndependentTables(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := writeFile(t, dir, "first.c", "int x = 1;\n")
	second := writeFile(t, dir, "second.c", "y = x;\n")

	var out bytes.Buffer
	if err := New(nil).Batch(context.Background(), &out, []string{first, second}); err != nil {
		t.Fatalf("Batch failed: %v", err)
	}

	if out.Len() != 0 {
		t.Errorf("Batch() = %q, want no output", out.String())
	}
}

func TestBatchRepeatable(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "a.c", "int a, b;\nc = a + b;\nb = 1;\nd = b + a;\n")

	var first, second bytes.Buffer

	c := New(nil)
	if err := c.Batch(context.Background(), &first, []string{path}); err != nil {
		t.Fatalf("Batch failed: %v", err)
	}

	if err := c.Batch(context.Background(), &second, []string{path}); err != nil {
		t.Fatalf("Batch failed: %v", err)
	}

	if first.String() != second.String() {
		t.Errorf("Second run differs: %q != %q", first.String(), second.String())
	}

	if got := strings.Count(first.String(), "\n"); got != 3 {
		t.Errorf("Got %d warnings, want 3: %s", got, first.String())
	}
}

func TestCheckLogs(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	New(logger).Check(context.Background(), "l.c", source.Split([]byte("int x, y;\nx = 1;\n")))

	for _, msg := range []string{"declared variable", "initialized variable", "checked file", "variables=2", "uninitialized=1"} {
		if !strings.Contains(logs.String(), msg) {
			t.Errorf("Log misses %q: %s", msg, logs.String())
		}
	}
}
