package adapter

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"reflect"

	"github.com/DeluxeOwl/evolve/adapter/strategy"
	"github.com/DeluxeOwl/evolve/event"
)

// Adapter converts incoming events of type In into the events of type Out
// expected by one consumer. It is immutable and safe for concurrent use.
type Adapter[In event.Any, Out, C any] struct {
	name     string
	bindings map[reflect.Type]binding[In, Out, C]
	log      *slog.Logger
}

func (a *Adapter[In, Out, C]) Name() string {
	return a.name
}

// Kind returns the kind of strategy bound to the dynamic type of ev.
func (a *Adapter[In, Out, C]) Kind(ev In) (strategy.Kind, bool) {
	b, ok := a.bindings[reflect.TypeOf(ev)]
	return b.kind, ok
}

// Transform dispatches one event to its strategy.
// Failures are yielded as *TransformError items.
func (a *Adapter[In, Out, C]) Transform(ctx context.Context, ev In, c C) iter.Seq2[Out, error] {
	return func(yield func(Out, error) bool) {
		var empty Out

		if any(ev) == nil {
			yield(empty, fmt.Errorf("adapter %q: transform nil event: %w", a.name, ErrNoStrategy))
			return
		}

		b, ok := a.bindings[reflect.TypeOf(ev)]
		if !ok {
			a.log.DebugContext(ctx, "no strategy for event",
				"adapter", a.name,
				"event", ev.EventName(),
				"version", ev.EventVersion().String(),
			)
			yield(empty, newTransformError(a.name, ev, ErrNoStrategy))
			return
		}

		for out, err := range b.transform(ctx, ev, c) {
			if err != nil {
				err = newTransformError(a.name, ev, err)
			}
			if !yield(out, err) {
				return
			}
		}
	}
}

// TransformAll transforms the events one at a time, in order.
//
// The outputs of an event are drained before the next event is pulled, so the
// result is the in-order concatenation of every strategy output. Errors take one
// slot and the sequence goes on. When ctx is done, its error is yielded once
// and the sequence ends.
func (a *Adapter[In, Out, C]) TransformAll(ctx context.Context, events iter.Seq[In], c C) iter.Seq2[Out, error] {
	return func(yield func(Out, error) bool) {
		for ev := range events {
			if !a.transformOne(ctx, ev, c, yield) {
				return
			}
		}
	}
}

// TransformAllFallible is like TransformAll for sources that can fail, such as
// decoded records. A source error is yielded wrapped with ErrSource.
func (a *Adapter[In, Out, C]) TransformAllFallible(
	ctx context.Context,
	events iter.Seq2[In, error],
	c C,
) iter.Seq2[Out, error] {
	return func(yield func(Out, error) bool) {
		for ev, err := range events {
			if err != nil {
				if a.cancelled(ctx, yield) {
					return
				}

				var empty Out
				if !yield(empty, fmt.Errorf("adapter %q: %w: %w", a.name, ErrSource, err)) {
					return
				}
				continue
			}

			if !a.transformOne(ctx, ev, c, yield) {
				return
			}
		}
	}
}

// transformOne reports whether the caller should keep going.
func (a *Adapter[In, Out, C]) transformOne(
	ctx context.Context,
	ev In,
	c C,
	yield func(Out, error) bool,
) bool {
	if a.cancelled(ctx, yield) {
		return false
	}

	for out, err := range a.Transform(ctx, ev, c) {
		if a.cancelled(ctx, yield) {
			return false
		}
		if !yield(out, err) {
			return false
		}
	}

	return true
}

func (a *Adapter[In, Out, C]) cancelled(ctx context.Context, yield func(Out, error) bool) bool {
	err := ctx.Err()
	if err == nil {
		return false
	}

	a.log.DebugContext(ctx, "transform cancelled", "adapter", a.name, "err", err)

	var empty Out
	yield(empty, err)
	return true
}
