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
	"strings"
	"unicode"
	"unicode/utf8"
)

// declarationKeywords are the primitive type names that make a line declaration-shaped.
var declarationKeywords = [...]string{"int", "float", "double", "char", "bool", "long", "short", "unsigned"}

// typeKeywords is the declaration type vocabulary, ordered longest first.
// Multi-word keywords precede the single words they contain, ties keep their listed order.
var typeKeywords = [...]string{
	"unsigned short",
	"unsigned long",
	"unsigned char",
	"unsigned int",
	"long long",
	"unsigned",
	"double",
	"short",
	"float",
	"long",
	"char",
	"bool",
	"int",
}

// isWordRune matches the word characters of [lexer.Word] tokens.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// containsWord reports whether keyword occurs in line delimited by word boundaries.
func containsWord(line, keyword string) bool {
	for i := 0; i <= len(line)-len(keyword); {
		j := strings.Index(line[i:], keyword)
		if j < 0 {
			return false
		}

		start, end := i+j, i+j+len(keyword)

		before, _ := utf8.DecodeLastRuneInString(line[:start])
		after, _ := utf8.DecodeRuneInString(line[end:])

		if (start == 0 || !isWordRune(before)) && (end == len(line) || !isWordRune(after)) {
			return true
		}

		i = start + 1
	}

	return false
}

// castOf reports whether keyword appears right after an opening parenthesis, as in "(int)x".
// The keyword is matched as a prefix, so "(integer" counts too.
func castOf(line, keyword string) bool {
	for i := range len(line) {
		if line[i] != '(' {
			continue
		}

		if rest := strings.TrimLeftFunc(line[i+1:], unicode.IsSpace); strings.HasPrefix(rest, keyword) {
			return true
		}
	}

	return false
}

// isIdentifier reports whether word is an ASCII identifier.
func isIdentifier(word string) bool {
	if word == "" || !isIdentStart(word[0]) {
		return false
	}

	for i := 1; i < len(word); i++ {
		if !isIdentPart(word[i]) {
			return false
		}
	}

	return true
}

// assignTarget returns the trailing ASCII identifier of a word, "" if there is none.
// Leading digits of that trailing part are not part of the identifier.
func assignTarget(word string) string {
	start := len(word)
	for start > 0 && isIdentPart(word[start-1]) {
		start--
	}

	for start < len(word) && !isIdentStart(word[start]) {
		start++
	}

	return word[start:]
}

func isIdentStart(c byte) bool {
	return c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || '0' <= c && c <= '9'
}
