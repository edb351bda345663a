package event

import (
	"github.com/DeluxeOwl/evolve/version"
)

// Name is the fully qualified name of an event, e.g. "chat.created".
// It should be a constant and should never change once assigned.
type Name = string

// Any is an event describing something that has happened.
//
// A versioned event returns constants from both methods: one Go type means
// exactly one name and one version. Raw events carry their version at runtime.
//
// Usage:
//
//	type ChatCreated struct{}
//
//	func (ChatCreated) EventName() event.Name            { return "chat.created" }
//	func (ChatCreated) EventVersion() version.Version    { return version.MustNew(1) }
type Any interface {
	EventName() Name
	EventVersion() version.Version
}

// NameOf returns the name of the event family E without needing a value.
// E's EventName must not depend on the receiver (a nil pointer receiver is fine).
func NameOf[E Any]() Name {
	var zero E
	return zero.EventName()
}
