// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package gclplugin

import initguard "fillmore-labs.com/initguard/analyzer"

// Settings are the golangci-lint settings of the initguard linter.
type Settings struct {
	// CSources enables checks of C source files.
	CSources *bool `json:"c-sources,omitzero"`
	// Headers enables checks of header files.
	Headers *bool `json:"headers,omitzero"`
	// CXXSources enables checks of C++ source files.
	CXXSources *bool `json:"cxx-sources,omitzero"`
	// NoLint enables suppression by //nolint:initguard comments.
	NoLint *bool `json:"nolint,omitzero"`
}

// Options converts the settings into analyzer options.
func (s Settings) Options() []initguard.Option {
	var opts []initguard.Option

	opts = appendOption(opts, s.CSources, initguard.WithCSources)
	opts = appendOption(opts, s.Headers, initguard.WithHeaders)
	opts = appendOption(opts, s.CXXSources, initguard.WithCXXSources)
	opts = appendOption(opts, s.NoLint, initguard.WithNoLint)

	return opts
}

func appendOption[T any](opts []initguard.Option, value *T, constructor func(T) initguard.Option) []initguard.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
