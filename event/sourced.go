package event

import "github.com/DeluxeOwl/evolve/version"

// Sourced is state that can be calculated by applying events of type E.
// Apply mutates the state in place and must handle every event of E.
type Sourced[E any] interface {
	Apply(event E)
}

// Sourcing is the reverse of Sourced: an event that knows how to apply itself to S.
// It makes sum-type interfaces usable as the transformed type of an adapter.
type Sourcing[S any] interface {
	ApplyTo(state *S)
}

// ApplyTo applies every event to the state, in order.
func ApplyTo[S any, E Sourcing[S]](state *S, events ...E) {
	for _, ev := range events {
		ev.ApplyTo(state)
	}
}

// Initial marks the event that brings some state into existence.
//
// Embed an instantiation into your own type when the transformed events have
// to satisfy a sum-type interface:
//
//	type ChatInitialized struct {
//		event.Initial[ChatCreated]
//	}
//
//	func (ChatInitialized) isChatEvent() {}
type Initial[E Any] struct {
	Event E
}

// NewInitial wraps ev as an initial event.
func NewInitial[E Any](ev E) Initial[E] {
	return Initial[E]{Event: ev}
}

func (i Initial[E]) EventName() Name { return i.Event.EventName() }

func (i Initial[E]) EventVersion() version.Version { return i.Event.EventVersion() }

func (i Initial[E]) initialEvent() Any { return i.Event }

type initialEvent interface {
	initialEvent() Any
}

// AsInitial unwraps ev if it's marked as Initial (directly or through embedding).
func AsInitial(ev any) (Any, bool) {
	in, ok := ev.(initialEvent)
	if !ok {
		return nil, false
	}

	return in.initialEvent(), true
}
