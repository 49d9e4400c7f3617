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

	"fillmore-labs.com/initguard/internal/config"
)

// Option configures specific behavior of a [New] initguard analyzer.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithCSources is an [Option] to configure whether C source files (.c) are checked.
func WithCSources(enabled bool) Option { return kindOption{kind: config.CSources, key: "c-sources", enabled: enabled} }

// WithHeaders is an [Option] to configure whether header files (.h, .hh, .hpp) are checked.
func WithHeaders(enabled bool) Option { return kindOption{kind: config.Headers, key: "headers", enabled: enabled} }

// WithCXXSources is an [Option] to configure whether C++ source files (.cc, .cpp, .cxx) are checked.
func WithCXXSources(enabled bool) Option {
	return kindOption{kind: config.CXXSources, key: "cxx-sources", enabled: enabled}
}

type kindOption struct {
	kind    config.FileKinds
	key     string
	enabled bool
}

func (o kindOption) apply(r *runOptions) {
	r.kinds.Set(o.kind, o.enabled)
}

func (o kindOption) LogAttr() slog.Attr {
	return slog.Bool(o.key, o.enabled)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *runOptions) {
	r.behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithNoLint is an [Option] to configure whether //nolint:initguard comments suppress diagnostics.
func WithNoLint(nolint bool) Option { return nolintOption{nolint: nolint} }

type nolintOption struct{ nolint bool }

func (o nolintOption) apply(r *runOptions) {
	r.behavior.Set(config.NoLint, o.nolint)
}

func (o nolintOption) LogAttr() slog.Attr {
	return slog.Bool("nolint", o.nolint)
}

// WithLogger is an [Option] to receive debug messages of the checks.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *runOptions) {
	r.logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}
