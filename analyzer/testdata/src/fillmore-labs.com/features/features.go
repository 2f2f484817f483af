// Package features is a minimal stub of fillmore-labs.com/features for
// analysis tests.
package features

type Flags uint64

type Definition struct {
	Name string
	Mask Flags
}

func Declare(name string, mask Flags) Definition { return Definition{Name: name, Mask: mask} }

type FlagSet struct{ state Flags }

func New(name string, flags ...Definition) (*FlagSet, error) { return &FlagSet{}, nil }

func Must(name string, flags ...Definition) *FlagSet { return &FlagSet{} }

func (s *FlagSet) Enable(mask Flags)       { s.state |= mask }
func (s *FlagSet) Disable(mask Flags)      { s.state &^= mask }
func (s *FlagSet) Enabled(mask Flags) bool { return s.state&mask == mask }
