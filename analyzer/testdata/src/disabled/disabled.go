package disabled

import "fillmore-labs.com/features"

// With all checks disabled none of these may be reported.
var Feature = features.Must("feature",
	features.Declare("alpha", 0b0011),
	features.Declare("alpha", 0),
)

func Vacuous() bool {
	return Feature.Enabled(0)
}
