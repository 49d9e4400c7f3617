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

// Package table holds the per-file variable table.
//
// The table is flat: names are file-global, there is no block or function scoping.
// It is owned by a single analysis run and needs no synchronization.
package table

import "iter"

// Variable is a tracked variable.
type Variable struct {
	// Name is the identifier, unique within a table.
	Name string

	// Initialized is set at declaration time and only ever changes from false to true.
	Initialized bool

	// DeclLine is the 1-based line of the first declaration.
	DeclLine int
}

// Table maps variable names to their state, preserving declaration order.
type Table struct {
	index map[string]int
	vars  []Variable
}

// New creates an empty [Table].
func New() *Table {
	return &Table{index: make(map[string]int)}
}

// Declare registers a variable unless the name is already present.
// It reports whether the variable was added; the first declaration wins.
func (t *Table) Declare(name string, initialized bool, line int) bool {
	if _, ok := t.index[name]; ok {
		return false
	}

	t.index[name] = len(t.vars)
	t.vars = append(t.vars, Variable{Name: name, Initialized: initialized, DeclLine: line})

	return true
}

// MarkInitialized sets the initialized flag of a tracked variable.
// It reports whether the flag changed; untracked names and already initialized variables are no-ops.
func (t *Table) MarkInitialized(name string) bool {
	i, ok := t.index[name]
	if !ok || t.vars[i].Initialized {
		return false
	}

	t.vars[i].Initialized = true

	return true
}

// Lookup returns the variable with the given name.
func (t *Table) Lookup(name string) (Variable, bool) {
	i, ok := t.index[name]
	if !ok {
		return Variable{}, false
	}

	return t.vars[i], true
}

// Uninitialized reports whether name is tracked and not known to be initialized.
func (t *Table) Uninitialized(name string) bool {
	i, ok := t.index[name]

	return ok && !t.vars[i].Initialized
}

// Len returns the number of tracked variables.
func (t *Table) Len() int {
	return len(t.vars)
}

// All returns an iterator over all variables in declaration order.
func (t *Table) All() iter.Seq[Variable] {
	return func(yield func(Variable) bool) {
		for _, v := range t.vars {
			if !yield(v) {
				return
			}
		}
	}
}
