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

package features

import (
	"log/slog"
	"strings"
	"sync/atomic"
)

// FlagSet is a named collection of feature flags packed into one atomic
// word. All flags start out disabled. A FlagSet is safe for concurrent use:
// [FlagSet.Enable] and [FlagSet.Disable] are single atomic
// read-modify-write operations and [FlagSet.Enabled] observes one
// consistent snapshot of the whole set.
//
// Use [New] or [Must] to create a FlagSet; the zero value has no declared
// flags and every Enable on it is a no-op.
type FlagSet struct {
	name  string
	flags []Definition

	// known is the union of all declared masks. Enable truncates its
	// argument to this universe, keeping undeclared bits permanently zero.
	known Flags

	state atomic.Uint64
}

// Name returns the name the set was declared with.
func (s *FlagSet) Name() string {
	return s.name
}

// Enable sets every declared bit of mask. Bits outside the declared
// universe are ignored. Enabling an already enabled flag is a no-op.
func (s *FlagSet) Enable(mask Flags) {
	s.state.Or(uint64(mask & s.known))
}

// Disable clears every bit of mask. Disabling an already disabled flag is a
// no-op.
func (s *FlagSet) Disable(mask Flags) {
	s.state.And(^uint64(mask))
}

// Set enables or disables the flags in mask depending on value.
func (s *FlagSet) Set(mask Flags, value bool) {
	if value {
		s.Enable(mask)
	} else {
		s.Disable(mask)
	}
}

// Enabled reports whether every bit of mask is currently set. For a combined
// mask this requires all constituent flags to be enabled simultaneously.
//
// Enabled(0) is vacuously true; don't rely on it.
func (s *FlagSet) Enabled(mask Flags) bool {
	return Flags(s.state.Load()).Has(mask)
}

// Flags returns a snapshot of the packed flag word.
func (s *FlagSet) Flags() Flags {
	return Flags(s.state.Load())
}

// Lookup returns the mask declared under name, for hosts that wire feature
// state from configuration or environment sources keyed by flag name.
func (s *FlagSet) Lookup(name string) (Flags, bool) {
	for _, f := range s.flags {
		if f.Name == name {
			return f.Mask, true
		}
	}

	return 0, false
}

// String returns the set name followed by the names of all currently
// enabled flags, in declaration order.
func (s *FlagSet) String() string {
	state := s.Flags()

	var b strings.Builder
	b.WriteString(s.name)
	b.WriteByte('[')

	sep := ""
	for _, f := range s.flags {
		if !state.Has(f.Mask) {
			continue
		}

		b.WriteString(sep)
		b.WriteString(f.Name)
		sep = " "
	}
	b.WriteByte(']')

	return b.String()
}

// LogValue implements [slog.LogValuer], grouping one boolean attribute per
// declared flag.
func (s *FlagSet) LogValue() slog.Value {
	state := s.Flags()

	as := make([]slog.Attr, 0, len(s.flags))
	for _, f := range s.flags {
		as = append(as, slog.Bool(f.Name, state.Has(f.Mask)))
	}

	return slog.GroupValue(as...)
}
