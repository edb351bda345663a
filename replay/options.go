package replay

import (
	"log/slog"

	"github.com/DeluxeOwl/evolve/event"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/DeluxeOwl/evolve/replay"

// ErrorPolicy decides what Run does with a failed item.
type ErrorPolicy uint8

const (
	// StopOnError returns on the first failed item. It's the default.
	StopOnError ErrorPolicy = iota
	// SkipErrors logs and counts failed items, then goes on.
	SkipErrors
)

func (p ErrorPolicy) String() string {
	switch p {
	case StopOnError:
		return "stop_on_error"
	case SkipErrors:
		return "skip_errors"
	default:
		return "unknown"
	}
}

type config struct {
	log            *slog.Logger
	tracerProvider trace.TracerProvider
	policy         ErrorPolicy
	onAbsent       func(ev event.Any)
}

func newConfig(opts []Option) config {
	cfg := config{
		log:            slog.New(slog.DiscardHandler),
		tracerProvider: otel.GetTracerProvider(),
		policy:         StopOnError,
		onAbsent:       func(event.Any) {},
	}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// Option configures Run, Optional, Pipeline and Group.
// Options that don't apply to a component are ignored by it.
type Option func(*config)

func WithSlogHandler(handler slog.Handler) Option {
	return func(c *config) {
		if handler == nil {
			c.log = slog.New(slog.DiscardHandler)
			return
		}
		c.log = slog.New(handler)
	}
}

// WithTracerProvider sets where the spans of Run go. The global provider by default.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *config) {
		if tp == nil {
			return
		}
		c.tracerProvider = tp
	}
}

func WithErrorPolicy(policy ErrorPolicy) Option {
	return func(c *config) {
		c.policy = policy
	}
}

// WithAbsentHook is called by Optional for every event applied while the state is absent.
func WithAbsentHook(hook func(ev event.Any)) Option {
	return func(c *config) {
		if hook == nil {
			return
		}
		c.onAbsent = hook
	}
}
