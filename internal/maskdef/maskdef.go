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

// Package maskdef validates feature flag declarations. It is shared between
// the runtime constructor and the featureset analyzer so that both surfaces
// reject exactly the same declarations.
package maskdef

import "math/bits"

// Violation classifies a malformed flag declaration.
type Violation uint8

//go:generate go tool stringer -type Violation -linecomment
const (
	// None indicates a well-formed declaration.
	None Violation = iota // no violation

	// EmptyName indicates a declaration with an empty flag name.
	EmptyName // empty flag name

	// ZeroMask indicates a mask with no bits set.
	ZeroMask // zero mask

	// MultiBitMask indicates a mask with more than one bit set. Combined
	// masks are legal in queries but not as a flag's identity.
	MultiBitMask // mask is not a single bit

	// DuplicateName indicates a flag name already declared in the set.
	DuplicateName // duplicate flag name

	// DuplicateBit indicates a mask bit already claimed by another flag.
	DuplicateBit // duplicate mask bit
)

// Tracker checks a sequence of flag declarations belonging to one set. The
// zero value is ready for use.
type Tracker struct {
	names map[string]struct{}
	bits  uint64
}

// Check validates one (name, mask) declaration against the set seen so far
// and records it when well-formed.
func (t *Tracker) Check(name string, mask uint64) Violation {
	switch {
	case name == "":
		return EmptyName

	case mask == 0:
		return ZeroMask

	case bits.OnesCount64(mask) != 1:
		return MultiBitMask
	}

	if _, ok := t.names[name]; ok {
		return DuplicateName
	}

	if t.bits&mask != 0 {
		return DuplicateBit
	}

	if t.names == nil {
		t.names = make(map[string]struct{})
	}
	t.names[name] = struct{}{}
	t.bits |= mask

	return None
}
