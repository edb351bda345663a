package replay_test

import (
	"iter"

	"github.com/DeluxeOwl/evolve/adapter"
	"github.com/DeluxeOwl/evolve/adapter/strategy"
	"github.com/DeluxeOwl/evolve/event"
	"github.com/DeluxeOwl/evolve/version"
)

//sumtype:decl
type counterEvent interface {
	event.Any
	isCounterEvent()
}

type opened struct {
	Start int `json:"start"`
}

func (opened) EventName() event.Name         { return "counter.opened" }
func (opened) EventVersion() version.Version { return version.MustNew(1) }
func (opened) isCounterEvent()               {}

type counterOpened struct {
	event.Initial[opened]
}

func (counterOpened) isCounterEvent() {}

type incremented struct {
	By int `json:"by"`
}

func (incremented) EventName() event.Name         { return "counter.incremented" }
func (incremented) EventVersion() version.Version { return version.MustNew(1) }
func (incremented) isCounterEvent()               {}

type counter struct {
	Value int
}

func (c *counter) Apply(ev counterEvent) {
	switch ev := ev.(type) {
	case counterOpened:
		c.Value = ev.Event.Start
	case opened:
		c.Value = ev.Start
	case incremented:
		c.Value += ev.By
	}
}

func openCounter(ev counterEvent) *counter {
	c := new(counter)
	c.Apply(ev)
	return c
}

func counterEvents() event.FuncsFor[counterEvent] {
	return event.FuncsFor[counterEvent]{
		func() counterEvent { return opened{} },
		func() counterEvent { return incremented{} },
	}
}

// counterAdapter marks opened as the initial event and passes increments through.
func counterAdapter(name string) *adapter.Adapter[counterEvent, counterEvent, strategy.NoContext] {
	b := adapter.NewBuilder[counterEvent, counterEvent, strategy.NoContext](
		name,
		adapter.WithEventSet(counterEvents().Table()),
	)
	adapter.Bind(b, strategy.Into(func(o opened) counterOpened {
		return counterOpened{Initial: event.NewInitial(o)}
	}))
	adapter.Bind(b, strategy.AsIs[incremented]())
	return b.MustBuild()
}

func seqOf(items ...any) iter.Seq2[counterEvent, error] {
	return func(yield func(counterEvent, error) bool) {
		for _, item := range items {
			var ok bool
			switch item := item.(type) {
			case error:
				ok = yield(nil, item)
			case counterEvent:
				ok = yield(item, nil)
			}
			if !ok {
				return
			}
		}
	}
}
