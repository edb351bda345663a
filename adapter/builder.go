// Package adapter dispatches incoming events to the strategy bound to their
// concrete type and flattens the results into one ordered sequence.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"maps"
	"reflect"

	"github.com/DeluxeOwl/evolve/adapter/strategy"
	"github.com/DeluxeOwl/evolve/event"
	"github.com/DeluxeOwl/evolve/internal/typeutils"
)

type transformFunc[In, Out, C any] func(ctx context.Context, ev In, c C) iter.Seq2[Out, error]

type binding[In, Out, C any] struct {
	kind      strategy.Kind
	transform transformFunc[In, Out, C]
}

type options struct {
	set    event.Table
	hasSet bool
	log    *slog.Logger
}

type Option func(*options)

// WithEventSet declares the event set of the adapter.
// Build fails unless every type of the set has a strategy.
func WithEventSet(table event.Table) Option {
	return func(o *options) {
		o.set = table
		o.hasSet = true
	}
}

func WithSlogHandler(handler slog.Handler) Option {
	return func(o *options) {
		if handler == nil {
			o.log = slog.New(slog.DiscardHandler)
			return
		}
		o.log = slog.New(handler)
	}
}

// Builder collects the strategies of an adapter.
// Binding problems are kept until Build reports them all at once.
type Builder[In event.Any, Out, C any] struct {
	name     string
	opts     options
	bindings map[reflect.Type]binding[In, Out, C]
	order    []reflect.Type
	errs     []error
}

// NewBuilder creates a builder for an adapter consuming In, producing Out and
// reading a context of type C.
func NewBuilder[In event.Any, Out, C any](name string, opts ...Option) *Builder[In, Out, C] {
	o := options{
		set:    nil,
		hasSet: false,
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Builder[In, Out, C]{
		name:     name,
		opts:     o,
		bindings: make(map[reflect.Type]binding[In, Out, C]),
		order:    nil,
		errs:     nil,
	}
}

// Bind binds s to the concrete event type T.
// The output of s must be assignable to Out, unless s is a Skip strategy.
// Outputs are converted to Out as an assignment would, so a strategy returning
// []string feeds an adapter whose output is a named slice type. A nil interface
// output fails with ErrConversion.
func Bind[In event.Any, Out, C, T, O, SC any](
	b *Builder[In, Out, C],
	s strategy.Strategy[T, O, SC],
) {
	outType := reflect.TypeFor[Out]()
	if s.Kind() != strategy.KindSkip && !reflect.TypeFor[O]().AssignableTo(outType) {
		b.fail(reflect.TypeFor[T](), fmt.Errorf(
			"%s is not assignable to %s: %w",
			typeutils.Name(reflect.TypeFor[O]()), typeutils.Name(outType), ErrMissingConversion,
		))
		return
	}

	bind(b, s, func(o O) (Out, bool) {
		if any(o) == nil {
			var empty Out
			return empty, false
		}
		return typeutils.Assign[Out](any(o))
	})
}

// BindConvert binds s to the concrete event type T and converts each of its
// outputs with convert.
func BindConvert[In event.Any, Out, C, T, O, SC any](
	b *Builder[In, Out, C],
	s strategy.Strategy[T, O, SC],
	convert func(O) Out,
) {
	if convert == nil {
		b.fail(reflect.TypeFor[T](), fmt.Errorf("nil conversion: %w", ErrMissingConversion))
		return
	}

	bind(b, s, func(o O) (Out, bool) {
		return convert(o), true
	})
}

func bind[In event.Any, Out, C, T, O, SC any](
	b *Builder[In, Out, C],
	s strategy.Strategy[T, O, SC],
	convert func(O) (Out, bool),
) {
	typ := reflect.TypeFor[T]()

	if typ.Kind() == reflect.Interface || !typ.AssignableTo(reflect.TypeFor[In]()) {
		b.fail(typ, fmt.Errorf("must be a concrete type assignable to %s: %w",
			typeutils.Name(reflect.TypeFor[In]()), ErrNotInput))
		return
	}

	ctxType := reflect.TypeFor[SC]()
	needsContext := ctxType != reflect.TypeFor[strategy.NoContext]()
	if needsContext && !reflect.TypeFor[C]().AssignableTo(ctxType) {
		b.fail(typ, fmt.Errorf("%s is not assignable to %s: %w",
			typeutils.Name(reflect.TypeFor[C]()), typeutils.Name(ctxType), ErrContextMismatch))
		return
	}

	if _, ok := b.bindings[typ]; ok {
		b.fail(typ, ErrDuplicateBinding)
		return
	}

	b.bindings[typ] = binding[In, Out, C]{
		kind: s.Kind(),
		transform: func(ctx context.Context, ev In, c C) iter.Seq2[Out, error] {
			//nolint:forcetypeassert // Dispatch is keyed by the dynamic type of ev.
			t := any(ev).(T)

			var sc SC
			if needsContext {
				var ok bool
				if sc, ok = typeutils.Assign[SC](any(c)); !ok {
					return func(yield func(Out, error) bool) {
						var empty Out
						yield(empty, fmt.Errorf("%T: %w", c, ErrContextMismatch))
					}
				}
			}

			return func(yield func(Out, error) bool) {
				for o, err := range s.Transform(ctx, t, sc) {
					if err != nil {
						var empty Out
						if !yield(empty, err) {
							return
						}
						continue
					}

					out, ok := convert(o)
					if !ok {
						err = fmt.Errorf("%T: %w", o, ErrConversion)
					}
					if !yield(out, err) {
						return
					}
				}
			}
		},
	}
	b.order = append(b.order, typ)
}

func (b *Builder[In, Out, C]) fail(typ reflect.Type, err error) {
	b.errs = append(b.errs, fmt.Errorf("%s: %w", typeutils.Name(typ), err))
}

// Build validates the bindings and returns the adapter.
//
// Every type of the declared event set needs a strategy, and the set itself
// must be free of name and version collisions. Types outside of the set can
// only be bound if they are Raw events.
func (b *Builder[In, Out, C]) Build() (*Adapter[In, Out, C], error) {
	errs := append([]error(nil), b.errs...)

	if b.opts.hasSet {
		errs = append(errs, b.checkSet()...)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("adapter %q: build: %w", b.name, errors.Join(errs...))
	}

	a := &Adapter[In, Out, C]{
		name:     b.name,
		bindings: maps.Clone(b.bindings),
		log:      b.opts.log,
	}

	a.log.Debug("adapter built", "adapter", a.name, "bindings", len(a.bindings))
	return a, nil
}

func (b *Builder[In, Out, C]) checkSet() []error {
	var errs []error

	if err := event.Verify(b.opts.set); err != nil {
		errs = append(errs, err)
	}

	inType := reflect.TypeFor[In]()
	inSet := make(map[reflect.Type]struct{}, len(b.opts.set))

	for _, typ := range b.opts.set.Types() {
		inSet[typ] = struct{}{}

		if !typ.AssignableTo(inType) {
			errs = append(errs, fmt.Errorf("%s: %w", typeutils.Name(typ), ErrNotInput))
			continue
		}

		if _, ok := b.bindings[typ]; !ok {
			errs = append(errs, fmt.Errorf("%s: %w", typeutils.Name(typ), ErrMissingBinding))
		}
	}

	for _, typ := range b.order {
		if _, ok := inSet[typ]; ok {
			continue
		}
		if event.IsRaw(reflect.Zero(typ).Interface()) {
			continue
		}
		errs = append(errs, fmt.Errorf("%s: not part of the event set: %w", typeutils.Name(typ), ErrNotInput))
	}

	return errs
}

// MustBuild is like Build but panics on error.
func (b *Builder[In, Out, C]) MustBuild() *Adapter[In, Out, C] {
	a, err := b.Build()
	if err != nil {
		panic(err)
	}
	return a
}
