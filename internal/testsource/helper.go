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

// Package testsource provides txtar based fixtures for tests.
//
// An archive holds source files, an "args" file with one argument per line
// and a "stdout" file with the expected output. The placeholder $WORK stands
// for the directory the archive is extracted to.
package testsource

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

// Placeholder is replaced by the extraction directory in arguments and expected output.
const Placeholder = "$WORK"

// Files with special meaning in an archive.
const (
	ArgsFile   = "args"
	StdoutFile = "stdout"
)

// Case is an extracted test archive.
type Case struct {
	// Dir is the directory holding the source files.
	Dir string

	// Args are the command line arguments with [Placeholder] expanded.
	Args []string

	// Stdout is the expected output with [Placeholder] expanded.
	Stdout string
}

// Load parses the archive at path and extracts its source files into a temporary directory.
func Load(tb testing.TB, path string) Case {
	tb.Helper()

	ar, err := txtar.ParseFile(path)
	if err != nil {
		tb.Fatalf("Can't parse archive %s: %v", path, err)
	}

	dir := tb.TempDir()
	expand := strings.NewReplacer(Placeholder, dir).Replace

	var c Case

	c.Dir = dir

	for _, f := range ar.Files {
		switch f.Name {
		case ArgsFile:
			for arg := range strings.Lines(string(f.Data)) {
				if arg = strings.TrimRight(arg, "\n"); arg != "" {
					c.Args = append(c.Args, expand(arg))
				}
			}

		case StdoutFile:
			c.Stdout = expand(string(f.Data))

		default:
			name := filepath.Join(dir, filepath.FromSlash(f.Name))
			if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
				tb.Fatalf("Can't create directory for %s: %v", f.Name, err)
			}

			if err := os.WriteFile(name, f.Data, 0o644); err != nil {
				tb.Fatalf("Can't write %s: %v", f.Name, err)
			}
		}
	}

	return c
}

// Glob returns the archives in dir matching "*.txtar".
func Glob(tb testing.TB, dir string) []string {
	tb.Helper()

	archives, err := filepath.Glob(filepath.Join(dir, "*.txtar"))
	if err != nil {
		tb.Fatalf("Can't list archives: %v", err)
	}

	if len(archives) == 0 {
		tb.Fatalf("No archives in %s", dir)
	}

	return archives
}
