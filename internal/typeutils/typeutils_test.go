package typeutils_test

import (
	"reflect"
	"testing"

	"github.com/DeluxeOwl/evolve/internal/typeutils"
	"github.com/stretchr/testify/require"
)

type sample struct{}

func TestName(t *testing.T) {
	require.Equal(t, "github.com/DeluxeOwl/evolve/internal/typeutils_test.sample", typeutils.Name(reflect.TypeFor[sample]()))
	require.Equal(t, "*github.com/DeluxeOwl/evolve/internal/typeutils_test.sample", typeutils.Name(reflect.TypeFor[*sample]()))
	require.Equal(t, "[]int", typeutils.Name(reflect.TypeFor[[]int]()))
	require.Equal(t, "string", typeutils.Name(reflect.TypeFor[string]()))
	require.Equal(t, "<nil>", typeutils.Name(nil))
}

type (
	tags     []string
	settings map[string]string
	named    interface{ Name() string }
)

func (sample) Name() string { return "sample" }

func TestAssign(t *testing.T) {
	got, ok := typeutils.Assign[tags]([]string{"a", "b"})
	require.True(t, ok)
	require.Equal(t, tags{"a", "b"}, got)

	back, ok := typeutils.Assign[map[string]string](settings{"region": "eu"})
	require.True(t, ok)
	require.Equal(t, "eu", back["region"])

	n, ok := typeutils.Assign[named](sample{})
	require.True(t, ok)
	require.Equal(t, "sample", n.Name())

	_, ok = typeutils.Assign[tags](settings{})
	require.False(t, ok)

	_, ok = typeutils.Assign[int](int64(1))
	require.False(t, ok, "conversions that assignments don't allow are rejected")
}

func TestAssign_Nil(t *testing.T) {
	n, ok := typeutils.Assign[named](nil)
	require.True(t, ok)
	require.Nil(t, n)

	_, ok = typeutils.Assign[tags](nil)
	require.False(t, ok)
}
