package adapter

import (
	"context"
	"iter"
)

// TransformedStream is the pull form of TransformAll.
// Call Stop when done with it before the end is reached.
type TransformedStream[Out any] struct {
	next func() (Out, error, bool)
	stop func()
}

// Stream returns a pull based stream over the transformed events.
func (a *Adapter[In, Out, C]) Stream(ctx context.Context, events iter.Seq[In], c C) *TransformedStream[Out] {
	next, stop := iter.Pull2(a.TransformAll(ctx, events, c))
	return &TransformedStream[Out]{
		next: next,
		stop: stop,
	}
}

// Next returns the next output, or false once the stream has ended.
//
//nolint:revive // Same shape as the next function of iter.Pull2.
func (s *TransformedStream[Out]) Next() (Out, error, bool) {
	return s.next()
}

// Stop releases the input and the strategy sequences. It's safe to call more than once.
func (s *TransformedStream[Out]) Stop() {
	s.stop()
}

// All ranges over what's left of the stream.
// Breaking out of the loop leaves the stream where it was.
func (s *TransformedStream[Out]) All() iter.Seq2[Out, error] {
	return func(yield func(Out, error) bool) {
		for {
			out, err, ok := s.next()
			if !ok {
				return
			}
			if !yield(out, err) {
				return
			}
		}
	}
}
