// Package evolve converts streams of versioned domain events into the events
// each consumer expects.
//
// The pieces live in their own packages: event (identity, sets, uniqueness,
// registry), adapter and adapter/strategy (dispatch), replay (applying to
// state). This package wires them with the defaults of Config.
package evolve

import (
	"context"

	"github.com/DeluxeOwl/evolve/adapter"
	"github.com/DeluxeOwl/evolve/event"
	"github.com/DeluxeOwl/evolve/replay"
)

// Registries.
func NewRegistry[E event.Any](funcs event.FuncsFor[E], opts ...event.RegistryOption) (*event.Registry[E], error) {
	opts = append([]event.RegistryOption{event.WithUnmarshal(Config.Unmarshaler)}, opts...)
	return event.NewRegistry(funcs, opts...)
}

// Adapters.
func NewAdapter[In event.Any, Out, C any](
	name string,
	funcs event.FuncsFor[In],
	bind func(b *adapter.Builder[In, Out, C]),
	opts ...adapter.Option,
) (*adapter.Adapter[In, Out, C], error) {
	opts = append([]adapter.Option{adapter.WithEventSet(funcs.Table())}, opts...)

	b := adapter.NewBuilder[In, Out, C](name, opts...)
	bind(b)
	return b.Build()
}

// Pipelines.
func NewLogPipeline[In event.Any, Out, C any](
	a *adapter.Adapter[In, Out, C],
	registry *event.Registry[In],
	log *MemoryLog,
	stream string,
	c C,
	state event.Sourced[Out],
	opts ...replay.Option,
) *replay.Pipeline[In, Out, C] {
	source := replay.RecordSource(registry, func(ctx context.Context) event.Records {
		return log.Records(ctx, stream)
	})
	return replay.NewPipeline(a, source, c, state, opts...)
}
