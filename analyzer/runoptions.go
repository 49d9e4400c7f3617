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

package analyzer

import (
	"log/slog"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/initguard/internal/config"
)

// runOptions represent configuration runOptions for the initguard analyzer.
type runOptions struct {
	// kinds selects the non-Go files to check.
	kinds config.BitMask[config.FileKinds]

	// behavior holds behavioral options.
	behavior config.BitMask[config.Behavior]

	// logger receives debug messages, nil discards them.
	logger *slog.Logger
}

// makeRunOptions returns a [runOptions] struct with overriding [Options] applied.
func makeRunOptions(opts Options) *runOptions {
	r := defaultRunOptions()
	opts.apply(r)

	return r
}

// defaultRunOptions initializes and returns a new runOptions instance with default values.
func defaultRunOptions() *runOptions {
	return &runOptions{
		kinds:    config.NewBitMask(config.AllKinds),
		behavior: config.NewBitMask(config.NoLint),
	}
}

// analyzer returns an initguard *[analysis.Analyzer] instance.
func (r *runOptions) analyzer() *analysis.Analyzer {
	a := &analysis.Analyzer{
		Name: name,
		Doc:  doc,
		URL:  url,
		Run:  r.run,
	}

	return a
}
