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

import "fillmore-labs.com/features"

// The analyzer's own behavior is a feature set of the library it checks.
const (
	// checkDeclarations validates New and Must declarations.
	checkDeclarations features.Flags = 1 << iota

	// checkVacuousQueries reports membership queries with a constant zero mask.
	checkVacuousQueries

	// includeGenerated reports diagnostics in generated files.
	includeGenerated
)

// runOptions represent configuration options for one featureset analyzer
// instance.
type runOptions struct {
	checks *features.FlagSet
}

// defaultRunOptions returns a new runOptions instance with default values.
func defaultRunOptions() *runOptions {
	checks := features.Must(name,
		features.Declare("declarations", checkDeclarations),
		features.Declare("vacuous-query", checkVacuousQueries),
		features.Declare("generated", includeGenerated),
	)
	checks.Enable(checkDeclarations | checkVacuousQueries)

	return &runOptions{checks: checks}
}
