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
	"slices"
	"testing"
)

func TestTypeKeywordsLongestFirst(t *testing.T) {
	t.Parallel()

	if !slices.IsSortedFunc(typeKeywords[:], func(a, b string) int { return len(b) - len(a) }) {
		t.Errorf("Type keywords are not ordered longest first: %q", typeKeywords)
	}
}

func TestContainsWord(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		line, keyword string
		want          bool
	}{
		{"int x;", "int", true},
		{"print x; int y;", "int", true},
		{"uint8 x;", "int", false},
		{"int_t x;", "int", false},
		{"éint x;", "int", false},
		{"x=int", "int", true},
		{"unsigned long x;", "unsigned long", true},
		{"unsigned longer x;", "unsigned long", false},
	}

	for _, tt := range tests {
		if got := containsWord(tt.line, tt.keyword); got != tt.want {
			t.Errorf("containsWord(%q, %q) = %t, want %t", tt.line, tt.keyword, got, tt.want)
		}
	}
}

func TestAssignTarget(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		word, want string
	}{
		{"x", "x"},
		{"x1", "x1"},
		{"9x", "x"},
		{"12ab", "ab"},
		{"a1é2b", "b"},
		{"aé", ""},
		{"42", ""},
	}

	for _, tt := range tests {
		if got := assignTarget(tt.word); got != tt.want {
			t.Errorf("assignTarget(%q) = %q, want %q", tt.word, got, tt.want)
		}
	}
}
