package replay

import (
	"log/slog"

	"github.com/DeluxeOwl/evolve/event"
)

// Optional is state that doesn't exist until an initial event is applied.
//
// An event wrapped in event.Initial (directly or embedded) creates the state
// with init, replacing any existing one. Other events are applied to the
// state if it's there, and ignored otherwise. Ignored events are reported to
// the absent hook and logged at debug level.
type Optional[S event.Sourced[E], E event.Any] struct {
	state    S
	present  bool
	init     func(ev E) S
	log      *slog.Logger
	onAbsent func(ev event.Any)
}

func NewOptional[S event.Sourced[E], E event.Any](init func(ev E) S, opts ...Option) *Optional[S, E] {
	cfg := newConfig(opts)

	//nolint:exhaustruct // state starts absent.
	return &Optional[S, E]{
		init:     init,
		log:      cfg.log,
		onAbsent: cfg.onAbsent,
	}
}

func (o *Optional[S, E]) Apply(ev E) {
	if _, ok := event.AsInitial(ev); ok {
		o.state = o.init(ev)
		o.present = true
		return
	}

	if !o.present {
		o.log.Debug("event applied to absent state",
			"event", ev.EventName(),
			"version", ev.EventVersion().String(),
		)
		o.onAbsent(ev)
		return
	}

	o.state.Apply(ev)
}

// Get returns the state and whether it exists.
func (o *Optional[S, E]) Get() (S, bool) {
	return o.state, o.present
}

// Reset makes the state absent again.
func (o *Optional[S, E]) Reset() {
	var empty S
	o.state = empty
	o.present = false
}

var _ event.Sourced[event.Any] = new(Optional[event.Sourced[event.Any], event.Any])
