package strategy

import (
	"context"
	"iter"
)

// Customizer is user defined conversion logic that may read a context value.
type Customizer[T, O, C any] interface {
	Customize(ctx context.Context, ev T, c C) iter.Seq2[O, error]
}

type CustomizerFunc[T, O, C any] func(ctx context.Context, ev T, c C) iter.Seq2[O, error]

func (f CustomizerFunc[T, O, C]) Customize(ctx context.Context, ev T, c C) iter.Seq2[O, error] {
	return f(ctx, ev, c)
}

type custom[T, O, C any] struct {
	customizer Customizer[T, O, C]
}

// Custom delegates to the customizer.
// The adapter's context must be assignable to C.
func Custom[T, O, C any](customizer Customizer[T, O, C]) Strategy[T, O, C] {
	return custom[T, O, C]{customizer: customizer}
}

func (custom[T, O, C]) Kind() Kind { return KindCustom }

func (s custom[T, O, C]) Transform(ctx context.Context, ev T, c C) iter.Seq2[O, error] {
	return s.customizer.Customize(ctx, ev, c)
}
