package evolve

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/DeluxeOwl/evolve/event"
)

// MemoryLog keeps encoded events in memory, per stream.
// It's a record source for tests and examples, nothing is persisted.
type MemoryLog struct {
	mu      sync.RWMutex
	streams map[string][]*event.Record
}

func NewMemoryLog() *MemoryLog {
	return &MemoryLog{
		mu:      sync.RWMutex{},
		streams: map[string][]*event.Record{},
	}
}

// Append encodes the events with Config.Marshaler and adds them to the stream.
func (l *MemoryLog) Append(ctx context.Context, stream string, events ...event.Any) error {
	records := make([]*event.Record, len(events))
	for i, ev := range events {
		rec, err := event.EncodeRecord(ev, Config.Marshaler)
		if err != nil {
			return fmt.Errorf("memory log: append: %w", err)
		}
		records[i] = rec
	}

	return l.AppendRecords(ctx, stream, records...)
}

// AppendRecords adds already encoded records to the stream.
func (l *MemoryLog) AppendRecords(ctx context.Context, stream string, records ...*event.Record) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("memory log: append: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.streams[stream] = append(l.streams[stream], records...)
	return nil
}

// Records reads the stream from the beginning. Records appended while reading
// are not part of the sequence.
func (l *MemoryLog) Records(ctx context.Context, stream string) event.Records {
	return func(yield func(*event.Record, error) bool) {
		l.mu.RLock()
		records := slices.Clone(l.streams[stream])
		l.mu.RUnlock()

		for _, rec := range records {
			if err := ctx.Err(); err != nil {
				yield(nil, err)
				return
			}

			if !yield(rec, nil) {
				return
			}
		}
	}
}

// Streams returns the names of the streams, sorted.
func (l *MemoryLog) Streams() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return slices.Sorted(maps.Keys(l.streams))
}
