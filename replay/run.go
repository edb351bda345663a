// Package replay applies transformed events to consumer state.
package replay

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/DeluxeOwl/evolve/event"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Result counts what happened during a run.
type Result struct {
	Applied int
	Failed  int
}

// Run applies every successful item of outputs to state, in order.
//
// With StopOnError the first failed item ends the run and its error is
// returned. With SkipErrors failed items are logged and counted, and the
// returned error joins all of them.
func Run[E any](
	ctx context.Context,
	outputs iter.Seq2[E, error],
	state event.Sourced[E],
	opts ...Option,
) (Result, error) {
	cfg := newConfig(opts)

	ctx, span := cfg.tracerProvider.Tracer(tracerName).Start(ctx, "replay.run",
		trace.WithAttributes(
			attribute.String("replay.state", fmt.Sprintf("%T", state)),
			attribute.String("replay.error_policy", cfg.policy.String()),
		),
	)
	defer span.End()

	var (
		res  Result
		errs []error
	)

	for out, err := range outputs {
		if err != nil {
			res.Failed++

			if cfg.policy == StopOnError {
				cfg.log.ErrorContext(ctx, "replay stopped", "err", err, "applied", res.Applied)
				endSpan(span, res, err)
				return res, fmt.Errorf("replay: run: %w", err)
			}

			cfg.log.WarnContext(ctx, "skipping failed event", "err", err)
			errs = append(errs, err)
			continue
		}

		state.Apply(out)
		res.Applied++
	}

	err := errors.Join(errs...)
	endSpan(span, res, err)

	if err != nil {
		return res, fmt.Errorf("replay: run: %w", err)
	}

	cfg.log.DebugContext(ctx, "replay done", "applied", res.Applied)
	return res, nil
}

func endSpan(span trace.Span, res Result, err error) {
	span.SetAttributes(
		attribute.Int("replay.applied", res.Applied),
		attribute.Int("replay.failed", res.Failed),
	)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}

	span.SetStatus(codes.Ok, "")
}
