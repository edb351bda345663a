package event

import (
	"fmt"
	"iter"

	"github.com/DeluxeOwl/evolve/encoding"
	"github.com/DeluxeOwl/evolve/version"
)

// Record is an event as handed over by an external event source: its name,
// its schema version and an encoded payload. How records are stored is up to
// the source.
type Record struct {
	name    Name
	version version.Version
	data    []byte
}

func NewRecord(name Name, v version.Version, data []byte) *Record {
	return &Record{
		name:    name,
		version: v,
		data:    data,
	}
}

// EncodeRecord encodes ev into a record with marshal, encoding.Marshal if nil.
// Raw events are encoded as their payload only.
func EncodeRecord(ev Any, marshal encoding.MarshalFunc) (*Record, error) {
	if marshal == nil {
		marshal = encoding.Marshal
	}

	var payload any = ev
	if raw, ok := ev.(rawPayload); ok {
		payload = raw.rawPayload()
	}

	data, err := marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode record %q v%s: %w", ev.EventName(), ev.EventVersion(), err)
	}

	return NewRecord(ev.EventName(), ev.EventVersion(), data), nil
}

func (rec *Record) EventName() Name { return rec.name }

func (rec *Record) EventVersion() version.Version { return rec.version }

func (rec *Record) Data() []byte { return rec.data }

// Records is a lazy sequence of records, an error stops nothing by itself.
type Records = iter.Seq2[*Record, error]

// RecordsOf turns a slice of records into a sequence.
func RecordsOf(records ...*Record) Records {
	return func(yield func(*Record, error) bool) {
		for _, rec := range records {
			if !yield(rec, nil) {
				return
			}
		}
	}
}
