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
	"flag"
	"strconv"
)

// FlagValue returns a boolean [flag.Getter] bound to the flags in mask.
// Parsing the command line flag enables or disables those flags; the value
// reported before parsing reflects the set's current state.
//
// This is host wiring, not part of the container's contract: it only
// translates parsed input into [FlagSet.Set] calls.
func (s *FlagSet) FlagValue(mask Flags) flag.Getter {
	return boolValue{set: s, mask: mask}
}

type boolValue struct {
	set  *FlagSet
	mask Flags
}

// Set implements [flag.Value].
func (v boolValue) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	v.set.Set(v.mask, b)

	return nil
}

// String implements [flag.Value].
func (v boolValue) String() string {
	if v.set == nil {
		return "false"
	}

	return strconv.FormatBool(v.set.Enabled(v.mask))
}

// Get implements [flag.Getter].
func (v boolValue) Get() any {
	if v.set == nil {
		return false
	}

	return v.set.Enabled(v.mask)
}

// IsBoolFlag returns true to indicate that this is a boolean [flag.Value].
func (v boolValue) IsBoolFlag() bool { return true }

// parseBool returns the boolean value represented by the string.
func parseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "on", "On":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "off", "Off":
		return false, nil
	}

	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}
