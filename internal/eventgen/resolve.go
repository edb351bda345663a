package eventgen

import (
	"fmt"
	"strings"

	"github.com/DeluxeOwl/evolve/event"
)

// CollisionError is the generate time form of event.CollisionError.
type CollisionError struct {
	Set    string
	First  *Event
	Second *Event
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf(
		"set %s: event collision: %s (%s) and %s (%s) share name %q and version %s",
		e.Set, e.First.Type, e.First.Pos, e.Second.Type, e.Second.Pos, e.First.Name, e.First.Version,
	)
}

// Resolved is a set flattened down to its events.
type Resolved struct {
	Set    *Set
	Events []*Event
}

// Resolve flattens every set of the package and checks that no two events of
// a set share a name and version.
func (p *Package) Resolve(maxEvents int) ([]Resolved, error) {
	resolved := make([]Resolved, 0, len(p.Sets))

	for _, s := range p.Sets {
		events, err := p.flatten(s, nil)
		if err != nil {
			return nil, err
		}

		if len(events) > maxEvents {
			return nil, fmt.Errorf("set %s: %d events: %w", s.Name, len(events), event.ErrTooManyEvents)
		}

		if err := checkUnique(s.Name, events); err != nil {
			return nil, err
		}

		resolved = append(resolved, Resolved{Set: s, Events: events})
	}

	return resolved, nil
}

// flatten walks the members depth first. Events reached through more than one
// path are listed once.
func (p *Package) flatten(s *Set, path []string) ([]*Event, error) {
	for _, name := range path {
		if name == s.Name {
			return nil, fmt.Errorf("%s: %s -> %s: %w", s.Pos, strings.Join(path, " -> "), s.Name, ErrCycle)
		}
	}
	path = append(path, s.Name)

	var (
		events []*Event
		seen   = make(map[string]struct{})
	)
	add := func(ev *Event) {
		if _, ok := seen[ev.Type]; ok {
			return
		}
		seen[ev.Type] = struct{}{}
		events = append(events, ev)
	}

	for _, member := range s.Members {
		if ev, ok := p.event(member); ok {
			add(ev)
			continue
		}

		inner, ok := p.set(member)
		if !ok {
			return nil, fmt.Errorf("%s: set %s: %q: %w", s.Pos, s.Name, member, ErrUnknownMember)
		}

		nested, err := p.flatten(inner, path)
		if err != nil {
			return nil, err
		}
		for _, ev := range nested {
			add(ev)
		}
	}

	return events, nil
}

// checkUnique compares every event with every later one.
func checkUnique(set string, events []*Event) error {
	for i := range events {
		for j := i + 1; j < len(events); j++ {
			a, b := events[i], events[j]
			if a.Type != b.Type && a.Name == b.Name && a.Version == b.Version {
				return &CollisionError{Set: set, First: a, Second: b}
			}
		}
	}
	return nil
}
