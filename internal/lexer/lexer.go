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

// Package lexer splits a single source line into word, space and punctuation tokens.
//
// Words are maximal runs of letters, digits and underscores, so comparing a
// word token against a name is the same as a whole-word match.
package lexer

import (
	"strconv"
	"unicode/utf8"

	plexer "github.com/alecthomas/participle/v2/lexer"
)

// Kind classifies a [Token].
type Kind uint8

const (
	// Word is a maximal run of letters, digits and underscores.
	Word Kind = iota + 1

	// Space is a run of white space.
	Space

	// Punct is any other single character.
	Punct
)

func (k Kind) String() string {
	switch k {
	case Word:
		return "Word"

	case Space:
		return "Space"

	case Punct:
		return "Punct"

	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

var definition = plexer.MustSimple([]plexer.SimpleRule{
	{Name: "Word", Pattern: `[\p{L}\p{N}_]+`},
	{Name: "Space", Pattern: `[\s\x0B\x{85}\p{Z}]+`},
	{Name: "Punct", Pattern: `(?s:.)`},
})

var kinds = func() map[plexer.TokenType]Kind {
	symbols := definition.Symbols()

	return map[plexer.TokenType]Kind{
		symbols["Word"]:  Word,
		symbols["Space"]: Space,
		symbols["Punct"]: Punct,
	}
}()

// Token is a lexical unit of a line.
type Token struct {
	Kind  Kind
	Value string

	// Offset is the byte offset of the token in the line.
	Offset int

	// Column is the zero-based character offset of the token in the line.
	Column int
}

// Tokens is the token sequence of one line.
type Tokens []Token

// Split tokenizes a line. Invalid UTF-8 is expected to be removed by the caller.
func Split(line string) Tokens {
	if line == "" {
		return nil
	}

	// The catch-all Punct rule matches any rune, so neither step fails on valid UTF-8.
	lex, err := definition.LexString("", line)
	if err != nil {
		return nil
	}

	raw, err := plexer.ConsumeAll(lex)
	if err != nil {
		return nil
	}

	tokens := make(Tokens, 0, len(raw))
	offset, column := 0, 0

	for _, t := range raw {
		if t.EOF() {
			break
		}

		tokens = append(tokens, Token{Kind: kinds[t.Type], Value: t.Value, Offset: offset, Column: column})

		offset += len(t.Value)
		column += utf8.RuneCountInString(t.Value)
	}

	return tokens
}

// Next returns the first token after index i that is not white space.
func (ts Tokens) Next(i int) (Token, bool) {
	for _, t := range ts[i+1:] {
		if t.Kind != Space {
			return t, true
		}
	}

	return Token{}, false
}

// BareAssign reports whether the token at index i is followed, after optional white space,
// by a single "=" that does not start "==".
func (ts Tokens) BareAssign(i int) bool {
	j := i + 1
	if j < len(ts) && ts[j].Kind == Space {
		j++
	}

	if j >= len(ts) || ts[j].Value != "=" {
		return false
	}

	return j+1 >= len(ts) || ts[j+1].Value != "="
}
