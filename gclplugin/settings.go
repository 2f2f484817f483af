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

package gclplugin

import featureset "fillmore-labs.com/features/analyzer"

// Settings represents the configuration options for an instance of the
// [Plugin].
type Settings struct {
	// Declarations enables validation of feature set declarations.
	Declarations *bool `json:"declarations,omitzero"`
	// VacuousQuery enables reporting of constant zero mask queries.
	VacuousQuery *bool `json:"vacuous-query,omitzero"`
	// Generated enables diagnostics in generated files.
	Generated *bool `json:"generated,omitzero"`
}

// Options converts [Settings] into a list of [featureset.Option] for the
// featureset analyzer. It processes settings and applies them only when
// explicitly set (non-nil).
func (s Settings) Options() []featureset.Option {
	var opts []featureset.Option

	opts = appendOption(opts, s.Declarations, featureset.WithDeclarations)
	opts = appendOption(opts, s.VacuousQuery, featureset.WithVacuousQuery)
	opts = appendOption(opts, s.Generated, featureset.WithGenerated)

	return opts
}

// appendOption appends a non-nil setting to a [featureset.Option] list.
func appendOption[T any](opts []featureset.Option, value *T, constructor func(T) featureset.Option) []featureset.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
