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

package scan_test

import (
	"context"
	"os"
	"slices"
	"testing"

	"gopkg.in/yaml.v3"

	. "fillmore-labs.com/initguard/internal/scan"
	"fillmore-labs.com/initguard/internal/source"
	"fillmore-labs.com/initguard/internal/table"
)

type useAt struct {
	Line   int    `yaml:"line"`
	Column int    `yaml:"column"`
	Name   string `yaml:"name"`
}

type scanCase struct {
	Name   string  `yaml:"name"`
	Source string  `yaml:"source"`
	Uses   []useAt `yaml:"uses"`
}

func loadCases(tb testing.TB) []scanCase {
	tb.Helper()

	data, err := os.ReadFile("testdata/cases.yaml")
	if err != nil {
		tb.Fatalf("Can't read cases: %v", err)
	}

	var cases []scanCase
	if err := yaml.Unmarshal(data, &cases); err != nil {
		tb.Fatalf("Can't decode cases: %v", err)
	}

	return cases
}

func scanSource(src string) []useAt {
	s := New(table.New(), nil)

	var uses []useAt

	for _, line := range source.Split([]byte(src)) {
		for _, u := range s.Line(context.Background(), line.Text, line.Number) {
			uses = append(uses, useAt{Line: line.Number, Column: u.Column, Name: u.Name})
		}
	}

	return uses
}

func TestCases(t *testing.T) {
	t.Parallel()

	cases := loadCases(t)
	if len(cases) == 0 {
		t.Fatal("No cases found")
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			if got := scanSource(tc.Source); !slices.Equal(got, tc.Uses) {
				t.Errorf("Got uses %+v, want %+v", got, tc.Uses)
			}
		})
	}
}

func TestRescanIsStable(t *testing.T) {
	t.Parallel()

	const src = "int x;\ny = x + 1;\nint z;\nw = z * x;\n"

	first, second := scanSource(src), scanSource(src)
	if !slices.Equal(first, second) {
		t.Errorf("Rescan differs: %+v != %+v", first, second)
	}
}

func TestIsDeclaration(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		line string
		want bool
	}{
		{"int x;", true},
		{"int a, b = 1;", true},
		{"unsigned u", false},
		{"float f,", true},
		{"(int)x;", false},
		{"y = ( int )x;", false},
		{"void f(int a);", false},
		{"int f(void);", true},
		{"integer x;", false},
		{"x = 1;", false},
		{"printf(\"%d\", len);", false},
		{"struct { char c; };", true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			t.Parallel()

			if got := IsDeclaration(tt.line); got != tt.want {
				t.Errorf("IsDeclaration(%q) = %t, want %t", tt.line, got, tt.want)
			}
		})
	}
}

func TestTypeKeyword(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		line string
		want string
		ok   bool
	}{
		{"int x;", "int", true},
		{"unsigned int x;", "unsigned int", true},
		{"unsigned  int x;", "unsigned", true},
		{"long long n;", "long long", true},
		{"unsigned char c, d;", "unsigned char", true},
		{"short s; long l;", "short", true},
		{"uint x;", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			t.Parallel()

			got, ok := TypeKeyword(tt.line)
			if got != tt.want || ok != tt.ok {
				t.Errorf("TypeKeyword(%q) = %q, %t, want %q, %t", tt.line, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestDeclare(t *testing.T) {
	t.Parallel()

	tab := table.New()
	s := New(tab, nil)

	got := s.Declare(context.Background(), "int a, b = 1, c[2], d(4);", 7)

	want := []Declaration{
		{Name: "a", Initialized: false, Offset: 4},
		{Name: "b", Initialized: true, Offset: 7},
		{Name: "c", Initialized: true, Offset: 14},
		{Name: "d", Initialized: true, Offset: 20},
	}
	if !slices.Equal(got, want) {
		t.Errorf("Declare = %+v, want %+v", got, want)
	}

	if again := s.Declare(context.Background(), "int a = 5;", 9); len(again) != 0 {
		t.Errorf("Redeclaration added %+v", again)
	}

	if v, _ := tab.Lookup("a"); v.Initialized || v.DeclLine != 7 {
		t.Errorf("Variable a = %+v, want uninitialized from line 7", v)
	}
}
