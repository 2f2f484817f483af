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

package analyzer_test

import (
	"flag"
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"

	. "fillmore-labs.com/features/analyzer"
)

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	testdata := analysistest.TestData()

	tests := []struct {
		name    string
		dir     string
		options Option
	}{
		{
			name: "Default",
			dir:  "a",
		},
		{
			name:    "Generated",
			dir:     "generated",
			options: WithGenerated(true),
		},
		{
			name:    "Disabled",
			dir:     "disabled",
			options: Options{WithDeclarations(false), WithVacuousQuery(false)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var opts Options
			if tt.options != nil {
				opts = Options{tt.options}
			}

			analysistest.Run(t, testdata, New(opts), tt.dir)
		})
	}
}

func TestFlags(t *testing.T) {
	t.Parallel()

	a := New()

	if err := a.Flags.Parse([]string{"-declarations=false", "-generated"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	tests := []struct {
		name string
		want bool
	}{
		{name: "declarations", want: false},
		{name: "vacuous-query", want: true},
		{name: "generated", want: true},
	}

	for _, tt := range tests {
		f := a.Flags.Lookup(tt.name)
		if f == nil {
			t.Fatalf("Flag %q not registered", tt.name)
		}

		if got := f.Value.(flag.Getter).Get(); got != tt.want {
			t.Errorf("Flag %q = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestOptionsLogValue(t *testing.T) {
	t.Parallel()

	opts := Options{WithDeclarations(true), Options{WithVacuousQuery(false)}, nil, WithGenerated(true)}

	if got, want := len(opts.LogValue().Group()), 4; got != want {
		t.Errorf("Got %d attributes, want %d", got, want)
	}
}
