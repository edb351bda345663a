package event

import (
	"fmt"
	"reflect"

	"github.com/DeluxeOwl/evolve/internal/typeutils"
	"github.com/DeluxeOwl/evolve/version"
)

// Meta identifies one concrete event type of a set.
type Meta struct {
	Type    reflect.Type
	Name    Name
	Version version.Version
}

// NewMeta reads the metadata of ev.
func NewMeta(ev Any) Meta {
	return Meta{
		Type:    reflect.TypeOf(ev),
		Name:    ev.EventName(),
		Version: ev.EventVersion(),
	}
}

func (m Meta) String() string {
	return fmt.Sprintf("%s (%s v%s)", typeutils.Name(m.Type), m.Name, m.Version)
}

// Table is the flat list of concrete event types of a set, nested sets included.
// The order is not significant.
type Table []Meta

// Concat returns a new table containing t followed by others.
func (t Table) Concat(others ...Table) Table {
	size := len(t)
	for _, o := range others {
		size += len(o)
	}

	out := make(Table, 0, size)
	out = append(out, t...)
	for _, o := range others {
		out = append(out, o...)
	}

	return out
}

// Types returns the distinct types of the table, in order of first appearance.
func (t Table) Types() []reflect.Type {
	seen := make(map[reflect.Type]struct{}, len(t))
	types := make([]reflect.Type, 0, len(t))

	for _, m := range t {
		if _, ok := seen[m.Type]; ok {
			continue
		}
		seen[m.Type] = struct{}{}
		types = append(types, m.Type)
	}

	return types
}

// FuncsFor lists the factories of every concrete event of the set E.
//
// Usage:
//
//	func ChatEvents() event.FuncsFor[ChatEvent] {
//		return event.FuncsFor[ChatEvent]{
//			func() ChatEvent { return new(ChatCreated) },
//			func() ChatEvent { return new(MessagePosted) },
//		}
//	}
type FuncsFor[E Any] []func() E

// Table builds the metadata table of the set.
// Raw events are left out, they are not subject to the uniqueness check.
func (funcs FuncsFor[E]) Table() Table {
	table := make(Table, 0, len(funcs))
	for _, fn := range funcs {
		ev := fn()
		if IsRaw(ev) {
			continue
		}
		table = append(table, NewMeta(ev))
	}

	return table
}

// Concat flattens several sets of the same type into one.
func Concat[E Any](sets ...FuncsFor[E]) FuncsFor[E] {
	var out FuncsFor[E]
	for _, s := range sets {
		out = append(out, s...)
	}

	return out
}

// Nest lifts the nested set N into the set E.
// Every event of N must also implement E, Nest panics otherwise since
// this is a declaration error.
func Nest[E, N Any](inner FuncsFor[N]) FuncsFor[E] {
	out := make(FuncsFor[E], len(inner))

	for i, fn := range inner {
		if _, ok := any(fn()).(E); !ok {
			panic(fmt.Sprintf(
				"event: nest: %T is not part of %s",
				fn(), typeutils.Name(reflect.TypeFor[E]()),
			))
		}

		out[i] = func() E {
			//nolint:forcetypeassert // Checked above.
			return any(fn()).(E)
		}
	}

	return out
}
