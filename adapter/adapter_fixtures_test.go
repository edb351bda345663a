package adapter_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"iter"

	"github.com/DeluxeOwl/evolve/event"
	"github.com/DeluxeOwl/evolve/version"
)

//sumtype:decl
type incoming interface {
	event.Any
	isIncoming()
}

//sumtype:decl
type outgoing interface {
	event.Any
	isOutgoing()
}

type xHappened struct{}

func (xHappened) EventName() event.Name         { return "x" }
func (xHappened) EventVersion() version.Version { return version.MustNew(1) }
func (xHappened) isIncoming()                   {}

// yHappened is understood on both sides.
type yHappened struct {
	N int `json:"n"`
}

func (yHappened) EventName() event.Name         { return "y" }
func (yHappened) EventVersion() version.Version { return version.MustNew(1) }
func (yHappened) isIncoming()                   {}
func (yHappened) isOutgoing()                   {}

type pairAdded struct {
	First  string
	Second string
}

func (pairAdded) EventName() event.Name         { return "pair" }
func (pairAdded) EventVersion() version.Version { return version.MustNew(1) }
func (pairAdded) isIncoming()                   {}

type failing struct{}

func (failing) EventName() event.Name         { return "failing" }
func (failing) EventVersion() version.Version { return version.MustNew(1) }
func (failing) isIncoming()                   {}

// Not part of the incoming set.
type zHappened struct{}

func (zHappened) EventName() event.Name         { return "z" }
func (zHappened) EventVersion() version.Version { return version.MustNew(1) }
func (zHappened) isIncoming()                   {}

// Same name and version as xHappened.
type xImpostor struct{}

func (xImpostor) EventName() event.Name         { return "x" }
func (xImpostor) EventVersion() version.Version { return version.MustNew(1) }
func (xImpostor) isIncoming()                   {}

type yRaw struct {
	event.Raw[yHappened, json.RawMessage]
}

func (yRaw) isIncoming() {}

type aAdded struct {
	Value string
}

func (aAdded) EventName() event.Name         { return "a" }
func (aAdded) EventVersion() version.Version { return version.MustNew(1) }
func (aAdded) isOutgoing()                   {}

type bAdded struct {
	Value string
}

func (bAdded) EventName() event.Name         { return "b" }
func (bAdded) EventVersion() version.Version { return version.MustNew(1) }
func (bAdded) isOutgoing()                   {}

func incomingEvents() event.FuncsFor[incoming] {
	return event.FuncsFor[incoming]{
		func() incoming { return xHappened{} },
		func() incoming { return yHappened{} },
		func() incoming { return pairAdded{} },
		func() incoming { return failing{} },
	}
}

var errBroken = errors.New("broken event")

type brokenError struct {
	Reason string
}

func (e *brokenError) Error() string { return fmt.Sprintf("broken: %s", e.Reason) }

func eventsOf(events ...incoming) iter.Seq[incoming] {
	return func(yield func(incoming) bool) {
		for _, ev := range events {
			if !yield(ev) {
				return
			}
		}
	}
}

func collect[O any](seq iter.Seq2[O, error]) ([]O, []error) {
	var (
		items []O
		errs  []error
	)
	for item, err := range seq {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		items = append(items, item)
	}
	return items, errs
}

type result struct {
	Out outgoing
	Err error
}

func collectAll(seq iter.Seq2[outgoing, error]) []result {
	var results []result
	for out, err := range seq {
		results = append(results, result{Out: out, Err: err})
	}
	return results
}
