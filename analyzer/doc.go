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

// Package analyzer implements the featureset static analysis pass.
//
// # Overview
//
// A malformed feature set declaration — a mask that is not a single bit, or
// a name or bit claimed twice within one set — is caught by
// [fillmore-labs.com/features.New] when the program starts. This pass
// reports the same mistakes at build time, so that flag-aliasing bugs never
// reach a running binary:
//
//	var srv = features.Must("srv",
//		features.Declare("http2", 0b0001),
//		features.Declare("torrent", 0b0011), // mask is not a single bit
//	)
//
// Only declarations whose names and masks are compile-time constants are
// checked; dynamically assembled definitions are left to the runtime
// validation.
//
// # Vacuous queries
//
// The pass additionally reports membership queries with a constant zero
// mask, which are vacuously true:
//
//	if srv.Enabled(0) { // feature query with zero mask is vacuously true
//
// # Checks
//
// The individual checks can be toggled programmatically with [Option]
// values or on the command line:
//
//   - declarations: validate New and Must declarations (default on)
//   - vacuous-query: report constant zero mask queries (default on)
//   - generated: also report in generated files (default off)
package analyzer
