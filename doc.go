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

// Package features implements runtime feature toggles for your library or
// program, allowing behavior to be changed on boot or dynamically at runtime
// using the same compiled binary artifact. This is different from build tags,
// which select behavior at compile time.
//
// At its core is [FlagSet], a thread-safe, bit-packed container of named
// boolean switches. A set is declared once with [New] or [Must], typically as
// a package-level variable next to the mask constants identifying its flags:
//
//	const (
//		Alpha features.Flags = 1 << iota
//		Beta
//	)
//
//	var feature = features.Must("feature",
//		features.Declare("alpha", Alpha),
//		features.Declare("beta", Beta),
//	)
//
//	func main() {
//		feature.Enabled(Alpha) // false
//		feature.Enabled(Beta)  // false
//
//		feature.Enable(Beta)
//		feature.Enabled(Alpha) // false
//		feature.Enabled(Beta)  // true
//	}
//
// # Multiple feature sets
//
// Each declaration materializes independent storage, so one program can carry
// any number of sets, even with coinciding mask values:
//
//	var ux = features.Must("ux",
//		features.Declare("json-output", JSONOutput),
//		features.Declare("verbose-output", VerboseOutput),
//	)
//
//	var srv = features.Must("srv",
//		features.Declare("http2-downloading", HTTP2Downloading),
//		features.Declare("bittorrent-downloading", BitTorrentDownloading),
//	)
//
// The identifier chosen for the set variable is its namespace; exporting or
// unexporting it controls which parts of a larger program may reference the
// set. Enabling a flag in srv never changes ux.
//
// # Host wiring
//
// Parsing command line arguments, environment variables or configuration
// files is the host program's responsibility. [FlagSet.RegisterFlags] and
// [FlagSet.FlagValue] bridge declared features to the standard [flag]
// package for hosts that want boot-time switches; by-name lookup for other
// sources is available through [FlagSet.Lookup].
//
// # Definition-time validation
//
// [New] rejects malformed declarations: empty or duplicate flag names, masks
// that are not a single bit, and mask bits claimed twice within one set.
// [Must] turns these into panics so that a malformed package-level set stops
// the program at startup. The companion
// [fillmore-labs.com/features/analyzer] package reports the same mistakes at
// build time, before any process runs.
package features
