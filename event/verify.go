package event

import (
	"errors"
	"fmt"
)

// MaxEvents is the ceiling on the number of entries a single table may hold.
const MaxEvents = 100_000

var ErrTooManyEvents = errors.New("too many events in set")

// CollisionError reports two distinct types sharing the same name and version.
type CollisionError struct {
	First  Meta
	Second Meta
}

func (err *CollisionError) Error() string {
	return fmt.Sprintf(
		"event collision: %s and %s share name %q and version %s",
		err.First, err.Second, err.First.Name, err.First.Version,
	)
}

// Verify checks that every name and version pair of the table belongs to a single type.
//
// Every entry is compared with every later one. The same type appearing more than once
// (e.g. reachable through two nested sets) is not a violation. Names are compared byte
// by byte, without any normalization.
func Verify(table Table) error {
	if len(table) > MaxEvents {
		return fmt.Errorf("verify: %d entries: %w", len(table), ErrTooManyEvents)
	}

	for outer := range table {
		for inner := outer + 1; inner < len(table); inner++ {
			a, b := table[outer], table[inner]
			if a.Type != b.Type && a.Name == b.Name && a.Version == b.Version {
				return &CollisionError{First: a, Second: b}
			}
		}
	}

	return nil
}

// HasCollision reports whether Verify would find a collision.
func HasCollision(table Table) bool {
	var collision *CollisionError
	return errors.As(Verify(table), &collision)
}

// MustVerify panics if the table of the named set doesn't pass Verify.
// Call it from an init function so a broken schema never starts.
func MustVerify(set string, table Table) {
	if err := Verify(table); err != nil {
		panic(fmt.Sprintf("event set %s: %v", set, err))
	}
}
