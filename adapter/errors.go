package adapter

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/DeluxeOwl/evolve/event"
	"github.com/DeluxeOwl/evolve/internal/typeutils"
	"github.com/DeluxeOwl/evolve/version"
)

// Errors returned by Build, joined together.
var (
	ErrDuplicateBinding  = errors.New("more than one strategy for the same event type")
	ErrMissingBinding    = errors.New("event type of the set has no strategy")
	ErrNotInput          = errors.New("event type is not an input of the adapter")
	ErrMissingConversion = errors.New("strategy output is not assignable to the adapter output")
	ErrContextMismatch   = errors.New("adapter context is not assignable to the strategy context")
)

// Errors yielded while transforming.
var (
	ErrNoStrategy = errors.New("no strategy for event")
	ErrConversion = errors.New("strategy output could not be converted")
	ErrSource     = errors.New("event source")
)

// TransformError is yielded in place of an output event when transforming an
// incoming event fails. The pipeline goes on with the next item.
type TransformError struct {
	Adapter string
	Event   event.Name
	Version version.Version
	Type    reflect.Type
	Err     error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf(
		"adapter %q: transform %s v%s (%s): %v",
		e.Adapter, e.Event, e.Version, typeutils.Name(e.Type), e.Err,
	)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

func newTransformError(adapter string, ev event.Any, err error) *TransformError {
	return &TransformError{
		Adapter: adapter,
		Event:   ev.EventName(),
		Version: ev.EventVersion(),
		Type:    reflect.TypeOf(ev),
		Err:     err,
	}
}
