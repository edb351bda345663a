// Package strategy holds the ways a single incoming event can be turned into
// the events a consumer understands.
package strategy

import (
	"context"
	"iter"
)

//go:generate go run github.com/matryer/moq@latest -pkg strategy_test -skip-ensure -rm -out strategy_mock_test.go . Customizer Splitter

// Kind names the variant of a strategy.
type Kind string

const (
	KindAsIs   Kind = "as_is"
	KindSkip   Kind = "skip"
	KindSplit  Kind = "split"
	KindCustom Kind = "custom"
	KindInto   Kind = "into"
)

// NoContext is the context of strategies that don't read any.
type NoContext struct{}

// Strategy converts one event of type T into zero or more events of type O.
//
// Creating the sequence never blocks and never fails, failures are yielded as
// items when the sequence is drawn. C is the context the strategy reads, it is
// supplied by the adapter for the whole run.
type Strategy[T, O, C any] interface {
	Kind() Kind
	Transform(ctx context.Context, ev T, c C) iter.Seq2[O, error]
}

// Items is a sequence yielding each item, without errors.
func Items[O any](items ...O) iter.Seq2[O, error] {
	return func(yield func(O, error) bool) {
		for _, item := range items {
			if !yield(item, nil) {
				return
			}
		}
	}
}

// Fail is a sequence with a single error.
func Fail[O any](err error) iter.Seq2[O, error] {
	return func(yield func(O, error) bool) {
		var empty O
		yield(empty, err)
	}
}

// Empty is a sequence without any items.
func Empty[O any]() iter.Seq2[O, error] {
	return func(func(O, error) bool) {}
}

type asIs[T any] struct{}

// AsIs passes the event through unchanged.
func AsIs[T any]() Strategy[T, T, NoContext] {
	return asIs[T]{}
}

func (asIs[T]) Kind() Kind { return KindAsIs }

func (asIs[T]) Transform(_ context.Context, ev T, _ NoContext) iter.Seq2[T, error] {
	return Items(ev)
}

type skip[T, O any] struct{}

// Skip drops the event. O is the output type of the adapter the strategy is bound to.
func Skip[T, O any]() Strategy[T, O, NoContext] {
	return skip[T, O]{}
}

func (skip[T, O]) Kind() Kind { return KindSkip }

func (skip[T, O]) Transform(context.Context, T, NoContext) iter.Seq2[O, error] {
	return Empty[O]()
}

type into[T, O any] struct {
	convert func(T) O
}

// Into converts the event into exactly one event with convert.
func Into[T, O any](convert func(T) O) Strategy[T, O, NoContext] {
	return into[T, O]{convert: convert}
}

func (into[T, O]) Kind() Kind { return KindInto }

func (i into[T, O]) Transform(_ context.Context, ev T, _ NoContext) iter.Seq2[O, error] {
	return func(yield func(O, error) bool) {
		yield(i.convert(ev), nil)
	}
}
