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

// Package source loads C-like source text and prepares its lines for scanning.
package source

import (
	"bytes"
	"os"
	"strings"
	"unicode"
)

// lineComment is the line comment marker. Block comments are not recognized.
const lineComment = "//"

// Line is a physical source line after comment stripping.
type Line struct {
	// Number is the 1-based line number.
	Number int

	// Start is the byte offset of the line in the raw content.
	Start int

	// Indent is the number of bytes of leading white space removed from the line.
	Indent int

	// Text is the trimmed line with any trailing line comment removed.
	Text string
}

// Empty reports whether nothing is left of the line after stripping comments and white space.
func (l Line) Empty() bool {
	return l.Text == ""
}

// StripComment truncates a line at the first line comment marker.
func StripComment(line string) string {
	if i := strings.Index(line, lineComment); i >= 0 {
		return line[:i]
	}

	return line
}

// Split breaks raw content into lines. "\n", "\r\n" and a lone "\r" terminate lines,
// invalid UTF-8 sequences are dropped.
func Split(content []byte) []Line {
	var lines []Line

	for start, number := 0, 1; start < len(content); number++ {
		end, next := lineEnd(content, start)

		text := strings.ToValidUTF8(string(content[start:end]), "")
		text = StripComment(text)
		trimmed := strings.TrimLeftFunc(text, unicode.IsSpace)

		lines = append(lines, Line{
			Number: number,
			Start:  start,
			Indent: len(text) - len(trimmed),
			Text:   strings.TrimRightFunc(trimmed, unicode.IsSpace),
		})

		start = next
	}

	return lines
}

// lineEnd returns the end of the line starting at start and the start of the following line.
func lineEnd(content []byte, start int) (end, next int) {
	i := bytes.IndexAny(content[start:], "\r\n")
	if i < 0 {
		return len(content), len(content)
	}

	end = start + i
	if content[end] == '\r' && end+1 < len(content) && content[end+1] == '\n' {
		return end, end + 2
	}

	return end, end + 1
}

// ReadFile reads and splits the file at path.
func ReadFile(path string) ([]byte, []Line, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	return content, Split(content), nil
}
