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

package maskdef_test

import (
	"testing"

	. "fillmore-labs.com/features/internal/maskdef"
)

type declaration struct {
	name string
	mask uint64
}

func TestCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		decls []declaration
		want  Violation
	}{
		{
			name:  "WellFormed",
			decls: []declaration{{"alpha", 1 << 0}, {"beta", 1 << 1}, {"gamma", 1 << 63}},
			want:  None,
		},
		{
			name:  "EmptyName",
			decls: []declaration{{"", 1 << 0}},
			want:  EmptyName,
		},
		{
			name:  "ZeroMask",
			decls: []declaration{{"alpha", 0}},
			want:  ZeroMask,
		},
		{
			name:  "MultiBitMask",
			decls: []declaration{{"alpha", 0b0011}},
			want:  MultiBitMask,
		},
		{
			name:  "DuplicateName",
			decls: []declaration{{"alpha", 1 << 0}, {"alpha", 1 << 1}},
			want:  DuplicateName,
		},
		{
			name:  "DuplicateBit",
			decls: []declaration{{"alpha", 1 << 2}, {"beta", 1 << 2}},
			want:  DuplicateBit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var tracker Tracker

			got := None
			for _, d := range tt.decls {
				if got = tracker.Check(d.name, d.mask); got != None {
					break
				}
			}

			if got != tt.want {
				t.Errorf("Check() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestViolationString(t *testing.T) {
	t.Parallel()

	if got, want := DuplicateBit.String(), "duplicate mask bit"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if got, want := Violation(99).String(), "Violation(99)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
