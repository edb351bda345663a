package evolve

import "github.com/DeluxeOwl/evolve/encoding"

// EvolveConfig holds the payload codec used by the constructors of this package.
type EvolveConfig struct {
	Unmarshaler encoding.UnmarshalFunc
	Marshaler   encoding.MarshalFunc
}

var Config = EvolveConfig{
	Marshaler:   encoding.Marshal,
	Unmarshaler: encoding.Unmarshal,
}
