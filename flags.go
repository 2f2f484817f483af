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

// Flags is a bitmask identifying one declared feature flag (a single bit) or
// a combination of flags within one [FlagSet] (the bitwise OR of their
// masks). Mask values are caller-supplied at declaration time, which lets
// callers pick explicit bit layouts for serialization or interop.
type Flags uint64

// Has reports whether every bit of flag is set in f.
func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

// Definition is one (name, mask) pair of a [FlagSet] declaration.
type Definition struct {
	// Name identifies the flag within its set.
	Name string

	// Mask is the flag's bit position, exactly one bit wide.
	Mask Flags
}

// Declare pairs a flag name with its mask for [New] and [Must].
func Declare(name string, mask Flags) Definition {
	return Definition{Name: name, Mask: mask}
}
