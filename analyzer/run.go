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
	"context"
	"fmt"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/initguard/internal/config"
	"fillmore-labs.com/initguard/internal/otherfile"
	"fillmore-labs.com/initguard/internal/run"
)

// run executes the initguard analyzer's pipeline on the C-like files of the package.
func (r *runOptions) run(p *analysis.Pass) (any, error) {
	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "InitGuard")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	checker := run.New(r.logger)

	for _, filename := range p.OtherFiles {
		if !r.kinds.Enabled(config.KindOf(filename)) {
			continue
		}

		content, err := p.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("initguard: %w", err)
		}

		currentFile := otherfile.NewCurrentFile(p.Fset, filename, content)

		// Skip generated files
		if currentFile.Generated() && !r.behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		nolint := r.behavior.Enabled(config.NoLint)

		for _, w := range checker.Check(ctx, currentFile.Name(), currentFile.Lines()) {
			if !currentFile.Contains(w.Offset) {
				otherfile.InternalError(p, currentFile.Pos(0), "Warning for %s at offset %d outside of %s", w.Name, w.Offset, currentFile.Name())

				continue
			}

			// Skip lines with nolint comment
			if nolint && currentFile.NoLintComment(w.Line) {
				continue
			}

			p.Report(analysis.Diagnostic{Pos: currentFile.Pos(w.Offset), Message: w.Message()})
		}
	}

	return nil, nil
}
