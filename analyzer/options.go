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

package analyzer

import "log/slog"

// Option configures specific behavior of a [New] featureset analyzer.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option]
// interface.
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

// WithDeclarations is an [Option] to configure whether New and Must
// declarations are validated.
func WithDeclarations(declarations bool) Option {
	return declarationsOption{declarations: declarations}
}

type declarationsOption struct{ declarations bool }

func (o declarationsOption) apply(r *runOptions) {
	r.checks.Set(checkDeclarations, o.declarations)
}

func (o declarationsOption) LogAttr() slog.Attr {
	return slog.Bool("declarations", o.declarations)
}

// WithVacuousQuery is an [Option] to configure whether constant zero mask
// queries are reported.
func WithVacuousQuery(vacuousQuery bool) Option {
	return vacuousQueryOption{vacuousQuery: vacuousQuery}
}

type vacuousQueryOption struct{ vacuousQuery bool }

func (o vacuousQueryOption) apply(r *runOptions) {
	r.checks.Set(checkVacuousQueries, o.vacuousQuery)
}

func (o vacuousQueryOption) LogAttr() slog.Attr {
	return slog.Bool("vacuous-query", o.vacuousQuery)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *runOptions) {
	r.checks.Set(includeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}
