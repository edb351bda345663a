// Package encoding holds the default payload codec of events.
package encoding

import "encoding/json"

// Unmarshaler lets an event decode its own payload.
type Unmarshaler interface {
	UnmarshalEvent(data []byte) error
}

// Marshaler lets an event encode its own payload.
type Marshaler interface {
	MarshalEvent() ([]byte, error)
}

type (
	UnmarshalFunc = func(data []byte, v any) error
	MarshalFunc   = func(v any) ([]byte, error)
)

// Unmarshal decodes data into v, using v's UnmarshalEvent when present and JSON otherwise.
func Unmarshal(data []byte, v any) error {
	if customUnmarshal, ok := v.(Unmarshaler); ok {
		return customUnmarshal.UnmarshalEvent(data)
	}

	return json.Unmarshal(data, v)
}

// Marshal encodes v, using v's MarshalEvent when present and JSON otherwise.
func Marshal(v any) ([]byte, error) {
	if customMarshal, ok := v.(Marshaler); ok {
		return customMarshal.MarshalEvent()
	}

	return json.Marshal(v)
}
