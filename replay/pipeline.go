package replay

import (
	"context"
	"iter"

	"github.com/DeluxeOwl/evolve/adapter"
	"github.com/DeluxeOwl/evolve/event"
)

// Source opens a fresh sequence of incoming events for one run.
type Source[In any] func(ctx context.Context) iter.Seq2[In, error]

// SourceOf is a source over a fixed list of events.
func SourceOf[In any](events ...In) Source[In] {
	return func(context.Context) iter.Seq2[In, error] {
		return func(yield func(In, error) bool) {
			for _, ev := range events {
				if !yield(ev, nil) {
					return
				}
			}
		}
	}
}

// RecordSource decodes the records opened by open with the registry.
func RecordSource[E event.Any](registry *event.Registry[E], open func(ctx context.Context) event.Records) Source[E] {
	return func(ctx context.Context) iter.Seq2[E, error] {
		return registry.DecodeAll(open(ctx))
	}
}

// Runner is anything a Group can run.
type Runner interface {
	Name() string
	Run(ctx context.Context) (Result, error)
}

// Pipeline ties an adapter to its source, context and state.
// Every run opens a new sequence from the source.
type Pipeline[In event.Any, Out, C any] struct {
	adapter *adapter.Adapter[In, Out, C]
	source  Source[In]
	c       C
	state   event.Sourced[Out]
	opts    []Option
}

func NewPipeline[In event.Any, Out, C any](
	a *adapter.Adapter[In, Out, C],
	source Source[In],
	c C,
	state event.Sourced[Out],
	opts ...Option,
) *Pipeline[In, Out, C] {
	return &Pipeline[In, Out, C]{
		adapter: a,
		source:  source,
		c:       c,
		state:   state,
		opts:    opts,
	}
}

func (p *Pipeline[In, Out, C]) Name() string {
	return p.adapter.Name()
}

func (p *Pipeline[In, Out, C]) Run(ctx context.Context) (Result, error) {
	outputs := p.adapter.TransformAllFallible(ctx, p.source(ctx), p.c)
	return Run(ctx, outputs, p.state, p.opts...)
}

var _ Runner = new(Pipeline[event.Any, event.Any, struct{}])
