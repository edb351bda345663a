package event_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/DeluxeOwl/evolve/event"
	"github.com/DeluxeOwl/evolve/version"
	"github.com/stretchr/testify/require"
)

func meta[T any](name string, v uint16) event.Meta {
	return event.Meta{
		Type:    reflect.TypeFor[T](),
		Name:    name,
		Version: version.Unchecked(v),
	}
}

func TestVerify(t *testing.T) {
	for _, tt := range []struct {
		name      string
		table     event.Table
		collision bool
	}{
		{
			name:      "empty",
			table:     nil,
			collision: false,
		},
		{
			name: "distinct types same name and version",
			table: event.Table{
				meta[chatCreated]("chat", 1),
				meta[chatImpostor]("chat", 1),
			},
			collision: true,
		},
		{
			name: "same type twice",
			table: event.Table{
				meta[chatCreated]("chat", 1),
				meta[chatCreated]("chat", 1),
			},
			collision: false,
		},
		{
			name: "same name different versions",
			table: event.Table{
				meta[chatCreated]("chat", 1),
				meta[*chatCreatedV2]("chat", 2),
			},
			collision: false,
		},
		{
			name: "names compared byte by byte",
			table: event.Table{
				meta[chatCreated]("chat", 1),
				meta[chatImpostor]("Chat", 1),
				meta[*fileUploaded]("chat ", 1),
			},
			collision: false,
		},
		{
			name: "collision far apart",
			table: event.Table{
				meta[chatCreated]("chat", 1),
				meta[*chatCreatedV2]("chat", 2),
				meta[*fileUploaded]("file", 1),
				meta[chatCreated]("chat", 1),
				meta[chatImpostor]("chat", 1),
			},
			collision: true,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			err := event.Verify(tt.table)
			require.Equal(t, tt.collision, event.HasCollision(tt.table))

			if !tt.collision {
				require.NoError(t, err)
				return
			}

			var collision *event.CollisionError
			require.ErrorAs(t, err, &collision)
			require.NotEqual(t, collision.First.Type, collision.Second.Type)
			require.Equal(t, collision.First.Name, collision.Second.Name)
			require.Equal(t, collision.First.Version, collision.Second.Version)
		})
	}
}

func TestVerify_TooManyEvents(t *testing.T) {
	table := make(event.Table, event.MaxEvents+1)
	err := event.Verify(table)
	require.ErrorIs(t, err, event.ErrTooManyEvents)
	require.False(t, event.HasCollision(table))
}

func TestMustVerify(t *testing.T) {
	require.NotPanics(t, func() {
		event.MustVerify("chat", event.Table{meta[chatCreated]("chat", 1)})
	})

	require.PanicsWithValue(t,
		"event set chat: "+(&event.CollisionError{
			First:  meta[chatCreated]("chat", 1),
			Second: meta[chatImpostor]("chat", 1),
		}).Error(),
		func() {
			event.MustVerify("chat", event.Table{
				meta[chatCreated]("chat", 1),
				meta[chatImpostor]("chat", 1),
			})
		},
	)
}

func TestCollisionError_Message(t *testing.T) {
	err := event.Verify(event.Table{
		meta[chatCreated]("chat", 1),
		meta[chatImpostor]("chat", 1),
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), `share name "chat" and version 1`)
	require.Contains(t, err.Error(), "event_test.chatCreated")
	require.Contains(t, err.Error(), "event_test.chatImpostor")
	require.False(t, errors.Is(err, event.ErrTooManyEvents))
}
