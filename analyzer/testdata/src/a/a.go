package a

import "fillmore-labs.com/features"

const (
	Alpha features.Flags = 1 << iota
	Beta
)

var Feature = features.Must("feature",
	features.Declare("alpha", Alpha),
	features.Declare("beta", Beta),
)

var Broken = features.Must("broken",
	features.Declare("first", 0b0011), // want `invalid feature flag declaration "first": mask is not a single bit`
	features.Declare("second", 0),     // want `invalid feature flag declaration "second": zero mask`
	features.Declare("", 1<<5),        // want `invalid feature flag declaration "": empty flag name`
	features.Declare("third", 1<<2),
	features.Declare("third", 1<<3),  // want `invalid feature flag declaration "third": duplicate flag name`
	features.Declare("fourth", 1<<2), // want `invalid feature flag declaration "fourth": duplicate mask bit`
)

func Vacuous() bool {
	return Feature.Enabled(0) // want `feature query with zero mask is vacuously true`
}

func Sound() bool {
	return Feature.Enabled(Alpha | Beta)
}

func dynamic(name string, mask features.Flags) (*features.FlagSet, error) {
	// Non-constant declarations are left to the runtime validation.
	return features.New("dynamic", features.Declare(name, mask))
}
