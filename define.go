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
	"errors"
	"fmt"
	"slices"

	"fillmore-labs.com/features/internal/maskdef"
)

// Definition-time errors reported by [New]. Runtime operations on a valid
// [FlagSet] cannot fail.
var (
	// ErrEmptyName is returned for an empty set or flag name.
	ErrEmptyName = errors.New("empty name")

	// ErrInvalidMask is returned when a declared mask is not a single bit.
	ErrInvalidMask = errors.New("mask is not a single bit")

	// ErrDuplicateName is returned when two flags in one set share a name.
	ErrDuplicateName = errors.New("duplicate flag name")

	// ErrDuplicateMask is returned when two flags in one set share a bit.
	ErrDuplicateMask = errors.New("duplicate mask bit")
)

// New declares a named feature set from an ordered list of flag
// definitions and returns it with every flag disabled.
//
// Declarations are validated before any state exists: flag names must be
// non-empty and unique within the set, and every mask must be exactly one
// bit of the 64-bit flag word, claimed by no other flag. A violation
// returns an error wrapping one of the Err sentinel values above.
func New(name string, flags ...Definition) (*FlagSet, error) {
	if name == "" {
		return nil, fmt.Errorf("features: set name: %w", ErrEmptyName)
	}

	var (
		tracker maskdef.Tracker
		known   Flags
	)

	for _, f := range flags {
		if v := tracker.Check(f.Name, uint64(f.Mask)); v != maskdef.None {
			return nil, fmt.Errorf("features: set %q: flag %q: %w", name, f.Name, violationError(v))
		}

		known |= f.Mask
	}

	return &FlagSet{
		name:  name,
		flags: slices.Clone(flags),
		known: known,
	}, nil
}

// Must is like [New] but panics on a malformed declaration, so that a
// broken package-level feature set stops the program before any flag is
// consulted. It is the intended form for static declarations:
//
//	var feature = features.Must("feature",
//		features.Declare("alpha", Alpha),
//		features.Declare("beta", Beta),
//	)
func Must(name string, flags ...Definition) *FlagSet {
	s, err := New(name, flags...)
	if err != nil {
		panic(err)
	}

	return s
}

// violationError maps a [maskdef.Violation] to its sentinel error.
func violationError(v maskdef.Violation) error {
	switch v {
	case maskdef.EmptyName:
		return ErrEmptyName

	case maskdef.ZeroMask, maskdef.MultiBitMask:
		return ErrInvalidMask

	case maskdef.DuplicateName:
		return ErrDuplicateName

	case maskdef.DuplicateBit:
		return ErrDuplicateMask

	default:
		return fmt.Errorf("unknown violation %v", v)
	}
}
