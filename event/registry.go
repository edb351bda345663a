package event

import (
	"errors"
	"fmt"
	"iter"
	"reflect"

	"github.com/DeluxeOwl/evolve/encoding"
	"github.com/DeluxeOwl/evolve/version"
)

var (
	ErrUnknownEvent  = errors.New("unknown event")
	ErrDuplicateRaw  = errors.New("more than one raw event for the same name")
	ErrRawNotPointer = errors.New("raw event factory must return a pointer")
)

type registryKey struct {
	name    Name
	version version.Version
}

// Registry resolves a name and version to the concrete event type of a set.
//
// Concrete types are matched first. A Raw event registered for a name is used
// for every version of that name without a concrete type.
type Registry[E Any] struct {
	factories map[registryKey]func() E
	raws      map[Name]func() E
	table     Table
	unmarshal encoding.UnmarshalFunc
}

type registryConfig struct {
	unmarshal encoding.UnmarshalFunc
}

type RegistryOption func(*registryConfig)

// WithUnmarshal replaces the payload decoder, encoding.Unmarshal by default.
func WithUnmarshal(fn encoding.UnmarshalFunc) RegistryOption {
	return func(c *registryConfig) {
		if fn == nil {
			return
		}
		c.unmarshal = fn
	}
}

// NewRegistry indexes the events of a set.
// It fails if two distinct types share a name and version.
func NewRegistry[E Any](funcs FuncsFor[E], opts ...RegistryOption) (*Registry[E], error) {
	cfg := registryConfig{unmarshal: encoding.Unmarshal}
	for _, o := range opts {
		o(&cfg)
	}

	table := funcs.Table()
	if err := Verify(table); err != nil {
		return nil, fmt.Errorf("new registry: %w", err)
	}

	r := &Registry[E]{
		factories: make(map[registryKey]func() E, len(funcs)),
		raws:      make(map[Name]func() E),
		table:     table,
		unmarshal: cfg.unmarshal,
	}

	for _, fn := range funcs {
		ev := fn()
		name := ev.EventName()

		if IsRaw(ev) {
			if _, ok := any(ev).(rawDecoder); !ok {
				return nil, fmt.Errorf("new registry: %q: %T: %w", name, ev, ErrRawNotPointer)
			}
			if _, ok := r.raws[name]; ok {
				return nil, fmt.Errorf("new registry: %q: %w", name, ErrDuplicateRaw)
			}
			r.raws[name] = fn
			continue
		}

		r.factories[registryKey{name: name, version: ev.EventVersion()}] = fn
	}

	return r, nil
}

// Table returns the metadata table the registry was verified against.
func (r *Registry[E]) Table() Table {
	return r.table
}

// Lookup returns the factory for the given name and version.
func (r *Registry[E]) Lookup(name Name, v version.Version) (func() E, bool) {
	if fn, ok := r.factories[registryKey{name: name, version: v}]; ok {
		return fn, true
	}

	fn, ok := r.raws[name]
	return fn, ok
}

// Decode creates the concrete event of a record and decodes its payload.
func (r *Registry[E]) Decode(rec *Record) (E, error) {
	var empty E

	fn, ok := r.Lookup(rec.EventName(), rec.EventVersion())
	if !ok {
		return empty, fmt.Errorf(
			"registry decode: %q v%s: %w",
			rec.EventName(), rec.EventVersion(), ErrUnknownEvent,
		)
	}

	ev := fn()

	if raw, ok := any(ev).(rawDecoder); ok {
		if err := raw.decodeRaw(rec.Data(), rec.EventVersion(), r.unmarshal); err != nil {
			return empty, fmt.Errorf("registry decode: %w", err)
		}
		return ev, nil
	}

	if len(rec.Data()) == 0 {
		return ev, nil
	}

	decoded, err := r.unmarshalInto(ev, rec.Data())
	if err != nil {
		return empty, fmt.Errorf(
			"registry decode: %q v%s: unmarshal: %w",
			rec.EventName(), rec.EventVersion(), err,
		)
	}

	return decoded, nil
}

// unmarshalInto decodes into ev, going through a pointer when the factory returns values.
func (r *Registry[E]) unmarshalInto(ev E, data []byte) (E, error) {
	val := reflect.ValueOf(ev)
	if val.Kind() == reflect.Pointer {
		return ev, r.unmarshal(data, ev)
	}

	ptr := reflect.New(val.Type())
	ptr.Elem().Set(val)

	if err := r.unmarshal(data, ptr.Interface()); err != nil {
		return ev, err
	}

	//nolint:forcetypeassert // Same dynamic type as ev.
	return ptr.Elem().Interface().(E), nil
}

// DecodeAll lazily decodes records into events of the set.
// Errors are yielded in place and decoding goes on with the next record.
func (r *Registry[E]) DecodeAll(records Records) iter.Seq2[E, error] {
	return func(yield func(E, error) bool) {
		for rec, err := range records {
			if err != nil {
				var empty E
				if !yield(empty, err) {
					return
				}
				continue
			}

			if !yield(r.Decode(rec)) {
				return
			}
		}
	}
}
