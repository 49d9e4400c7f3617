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

// Package otherfile wraps the non-Go files of an analysis pass.
package otherfile

import (
	"go/token"
	"regexp"
	"strings"

	"fillmore-labs.com/initguard/internal/source"
)

const initguard = "initguard"

// CurrentFile is a C-like file registered with the pass' file set.
type CurrentFile struct {
	handle    *token.File
	content   []byte
	lines     []source.Line
	generated bool
}

// NewCurrentFile adds the file to fset and splits its content into lines.
func NewCurrentFile(fset *token.FileSet, filename string, content []byte) CurrentFile {
	handle := fset.AddFile(filename, -1, len(content))
	handle.SetLinesForContent(content)

	c := CurrentFile{handle: handle, content: content, lines: source.Split(content)}
	c.generated = c.isGenerated()

	return c
}

// Name returns the file name.
func (c CurrentFile) Name() string {
	return c.handle.Name()
}

// Generated reports whether the file carries a "Code generated ... DO NOT EDIT." comment.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// Lines returns the comment-stripped lines of the file.
func (c CurrentFile) Lines() []source.Line {
	return c.lines
}

// Contains reports whether offset lies within the file content.
func (c CurrentFile) Contains(offset int) bool {
	return 0 <= offset && offset <= len(c.content)
}

// Pos converts a byte offset of the file content into a [token.Pos].
func (c CurrentFile) Pos(offset int) token.Pos {
	return c.handle.Pos(min(max(offset, 0), len(c.content)))
}

// raw returns the unprocessed text of a 1-based line.
func (c CurrentFile) raw(line int) string {
	if line < 1 || line > len(c.lines) {
		return ""
	}

	start, end := c.lines[line-1].Start, len(c.content)
	if line < len(c.lines) {
		end = c.lines[line].Start
	}

	return strings.TrimRight(string(c.content[start:end]), "\r\n")
}

var generatedPattern = regexp.MustCompile(`^// Code generated .* DO NOT EDIT\.$`)

func (c CurrentFile) isGenerated() bool {
	for i := range c.lines {
		if generatedPattern.MatchString(strings.TrimSpace(c.raw(i + 1))) {
			return true
		}
	}

	return false
}

// NoLintComment reports whether the 1-based line ends with a //nolint:initguard comment.
func (c CurrentFile) NoLintComment(line int) bool {
	text := c.raw(line)

	i := strings.Index(text, "//")
	if i < 0 {
		return false
	}

	return CommentHasNoLint(text[i:])
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint reports whether a comment is a nolint directive for initguard or all linters.
func CommentHasNoLint(comment string) bool {
	matches := nolintPattern.FindStringSubmatch(comment)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == initguard || l == "all" {
			return true
		}
	}

	return false
}
