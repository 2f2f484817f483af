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

package features_test

import (
	"fmt"

	"fillmore-labs.com/features"
)

// Server-side feature toggles.
const (
	HTTP2Downloading features.Flags = 1 << iota
	BitTorrentDownloading
)

// User experience feature toggles, deliberately reusing the same bits.
const (
	JSONOutput features.Flags = 1 << iota
	VerboseOutput
)

var (
	srv = features.Must("srv",
		features.Declare("http2-downloading", HTTP2Downloading),
		features.Declare("bittorrent-downloading", BitTorrentDownloading),
	)

	ux = features.Must("ux",
		features.Declare("json-output", JSONOutput),
		features.Declare("verbose-output", VerboseOutput),
	)
)

func Example() {
	// Parse CLI args, environment, read config file etc...
	srv.Enable(BitTorrentDownloading)
	ux.Enable(JSONOutput)

	switch {
	case srv.Enabled(HTTP2Downloading):
		fmt.Println("Downloading via http2...")
	case srv.Enabled(BitTorrentDownloading):
		fmt.Println("Downloading via bit torrent...")
	default:
		fmt.Println("Downloading the old fashioned way...")
	}

	if ux.Enabled(VerboseOutput) {
		fmt.Println("COOL")
	}

	// Output:
	// Downloading via bit torrent...
}

func ExampleFlagSet_Enabled() {
	const (
		Alpha features.Flags = 0b00000001
		Beta  features.Flags = 0b00000010
	)

	feature := features.Must("feature",
		features.Declare("alpha", Alpha),
		features.Declare("beta", Beta),
	)

	fmt.Println(feature.Enabled(Alpha), feature.Enabled(Beta))

	feature.Enable(Beta)
	fmt.Println(feature.Enabled(Alpha), feature.Enabled(Beta))

	// Output:
	// false false
	// false true
}
