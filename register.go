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

import "flag"

// RegisterFlags binds every declared feature to a boolean command line flag
// named after it. A nil flag set value defaults to the program's command
// line.
func (s *FlagSet) RegisterFlags(flags *flag.FlagSet) {
	if flags == nil {
		flags = flag.CommandLine
	}

	for _, f := range s.flags {
		flags.Var(boolValue{set: s, mask: f.Mask}, f.Name, "enable feature "+f.Name)
	}
}
