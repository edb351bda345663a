package event

import (
	"fmt"

	"github.com/DeluxeOwl/evolve/encoding"
	"github.com/DeluxeOwl/evolve/version"
)

// Raw is a versioned event whose version is only known at runtime.
//
// It's useful for consumers that accept any version of the event family E
// without describing every version as a separate type. E is only used for the
// name, Raw never holds a value of E.
//
// Raw types are not part of the uniqueness check done by Verify. If a set has
// concrete types with the same name as E, Raw should be seen as the fallback
// for the versions those types don't cover. Registry factories must return a
// pointer to a Raw type, e.g. new(ChatRaw).
type Raw[E Any, D any] struct {
	Data    D               `json:"data"`
	Version version.Version `json:"version"`
}

// NewRaw creates a new Raw event.
func NewRaw[E Any, D any](data D, v version.Version) Raw[E, D] {
	return Raw[E, D]{
		Data:    data,
		Version: v,
	}
}

func (r Raw[E, D]) EventName() Name { return NameOf[E]() }

func (r Raw[E, D]) EventVersion() version.Version { return r.Version }

func (Raw[E, D]) rawEvent() {}

func (r Raw[E, D]) rawPayload() any { return r.Data }

func (r *Raw[E, D]) decodeRaw(data []byte, v version.Version, unmarshal encoding.UnmarshalFunc) error {
	if err := unmarshal(data, &r.Data); err != nil {
		return fmt.Errorf("raw %q: unmarshal data: %w", r.EventName(), err)
	}

	r.Version = v
	return nil
}

type rawEvent interface {
	rawEvent()
}

type rawPayload interface {
	rawPayload() any
}

type rawDecoder interface {
	decodeRaw(data []byte, v version.Version, unmarshal encoding.UnmarshalFunc) error
}

// IsRaw reports whether ev is a Raw event (or a pointer to one).
func IsRaw(ev any) bool {
	_, ok := ev.(rawEvent)
	return ok
}
