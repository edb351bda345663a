package version

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Version is the revision number of an event schema.
// A valid Version is never zero and always fits into 16 bits.
type Version uint16

// Max is the highest representable Version.
const Max Version = math.MaxUint16

// New creates a Version out of the given value.
//
// It returns false when the value is zero, negative or doesn't fit into 16 bits.
func New[N constraints.Integer](value N) (Version, bool) {
	if value <= 0 {
		return 0, false
	}

	//nolint:gosec // Checked above, value is positive.
	if uint64(value) > math.MaxUint16 {
		return 0, false
	}

	return Version(value), true
}

// MustNew is like New but panics on an invalid value.
// Use it for package level literals.
func MustNew[N constraints.Integer](value N) Version {
	v, ok := New(value)
	if !ok {
		panic(fmt.Sprintf("version: invalid version %d", value))
	}

	return v
}

// Unchecked creates a Version without checking it.
// It exists for generated code, where the value was already validated at generation time.
// Passing 0 yields an invalid Version.
func Unchecked(value uint16) Version {
	return Version(value)
}

// Get returns the value as a primitive type.
func (v Version) Get() uint16 { return uint16(v) }

// Valid reports whether v was created from a valid value.
func (v Version) Valid() bool { return v != 0 }

func (v Version) String() string {
	return strconv.FormatUint(uint64(v), 10)
}
