package event_test

import (
	"errors"
	"testing"

	"github.com/DeluxeOwl/evolve/event"
	"github.com/DeluxeOwl/evolve/version"
	"github.com/stretchr/testify/require"
)

func TestEncodeRecord(t *testing.T) {
	rec, err := event.EncodeRecord(&chatCreatedV2{Title: "news", Public: true}, nil)
	require.NoError(t, err)

	require.Equal(t, "chat", rec.EventName())
	require.Equal(t, version.MustNew(2), rec.EventVersion())
	require.JSONEq(t, `{"title":"news","public":true}`, string(rec.Data()))
}

func TestEncodeRecord_RawPayloadOnly(t *testing.T) {
	raw := &rawChatEvent{rawChat: event.NewRaw[chatCreated](map[string]any{"title": "later"}, version.MustNew(9))}

	rec, err := event.EncodeRecord(raw, nil)
	require.NoError(t, err)
	require.Equal(t, version.MustNew(9), rec.EventVersion())
	require.JSONEq(t, `{"title":"later"}`, string(rec.Data()))

	registry := newChatRegistry(t)
	decoded, err := registry.Decode(rec)
	require.NoError(t, err)
	require.Equal(t, raw, decoded)
}

func TestEncodeRecord_MarshalError(t *testing.T) {
	errBoom := errors.New("boom")

	_, err := event.EncodeRecord(chatCreated{}, func(any) ([]byte, error) { return nil, errBoom })
	require.ErrorIs(t, err, errBoom)
}

func TestRecordsOf(t *testing.T) {
	a := event.NewRecord("a", version.MustNew(1), nil)
	b := event.NewRecord("b", version.MustNew(1), nil)

	var got []*event.Record
	for rec, err := range event.RecordsOf(a, b) {
		require.NoError(t, err)
		got = append(got, rec)
	}
	require.Equal(t, []*event.Record{a, b}, got)
}
