package strategy

import (
	"context"
	"iter"
)

// Splitter breaks one event into several smaller ones.
// The sequence is drawn lazily and each item may fail on its own.
type Splitter[T, O any] interface {
	Split(ev T) iter.Seq2[O, error]
}

type SplitterFunc[T, O any] func(ev T) iter.Seq2[O, error]

func (f SplitterFunc[T, O]) Split(ev T) iter.Seq2[O, error] {
	return f(ev)
}

type split[T, O any] struct {
	splitter Splitter[T, O]
}

// Split yields every event produced by the splitter, in order.
func Split[T, O any](splitter Splitter[T, O]) Strategy[T, O, NoContext] {
	return split[T, O]{splitter: splitter}
}

func (split[T, O]) Kind() Kind { return KindSplit }

func (s split[T, O]) Transform(_ context.Context, ev T, _ NoContext) iter.Seq2[O, error] {
	return s.splitter.Split(ev)
}

var _ Splitter[int, int] = SplitterFunc[int, int](nil)
