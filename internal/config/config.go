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

package config

import (
	"path/filepath"
	"strings"
)

// FileKinds represents the kinds of non-Go files that are checked.
type FileKinds uint8

const (
	// CSources selects C source files (.c).
	CSources FileKinds = 1 << iota

	// Headers selects C and C++ header files (.h, .hh, .hpp).
	Headers

	// CXXSources selects C++ source files (.cc, .cpp, .cxx).
	CXXSources

	// AllKinds selects every supported file kind.
	AllKinds = CSources | Headers | CXXSources
)

// KindOf returns the file kind of a path based on its extension, or 0 when the file is not C-like.
func KindOf(path string) FileKinds {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".c":
		return CSources

	case ".h", ".hh", ".hpp":
		return Headers

	case ".cc", ".cpp", ".cxx":
		return CXXSources

	default:
		return 0
	}
}

// Behavior represents behavioral options for the analyzer.
type Behavior uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Behavior = 1 << iota

	// NoLint specifies whether //nolint:initguard comments suppress warnings.
	NoLint
)
