package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/stockboard/pkg/types"
)

func renderInstance(t *testing.T, target string, token uint64) *Instance {
	t.Helper()

	r := NewRenderer(640, 320)
	inst, err := r.Price(target, token, nil, types.Float64Slice{}, nil, nil)
	require.NoError(t, err)
	return inst
}

func Test_Registry_Replace(t *testing.T) {
	reg := NewRegistry()

	first := renderInstance(t, "price/AAPL/1y", 1)
	second := renderInstance(t, "price/AAPL/1y", 2)

	require.NoError(t, reg.Replace(first))
	require.NoError(t, reg.Replace(second))

	// the prior occupant is destroyed, never accumulated
	assert.Equal(t, 1, reg.Len())
	assert.True(t, first.Released())
	assert.False(t, second.Released())
	assert.Same(t, second, reg.Get("price/AAPL/1y"))
}

func Test_Registry_StaleToken(t *testing.T) {
	reg := NewRegistry()

	newer := renderInstance(t, "price/AAPL/1y", 5)
	require.NoError(t, reg.Replace(newer))

	// a response from an older query arrives late and must be dropped
	stale := renderInstance(t, "price/AAPL/1y", 3)
	err := reg.Replace(stale)
	assert.ErrorIs(t, err, ErrStaleInstance)
	assert.True(t, stale.Released())

	assert.Same(t, newer, reg.Get("price/AAPL/1y"))
	assert.False(t, newer.Released())
}

func Test_Registry_IndependentTargets(t *testing.T) {
	reg := NewRegistry()

	a := renderInstance(t, "price/AAPL/1y", 1)
	b := renderInstance(t, "volume/AAPL/1y", 1)

	require.NoError(t, reg.Replace(a))
	require.NoError(t, reg.Replace(b))

	assert.Equal(t, 2, reg.Len())
	assert.False(t, a.Released())
	assert.False(t, b.Released())
}

func Test_Registry_Release(t *testing.T) {
	reg := NewRegistry()

	inst := renderInstance(t, "price/AAPL/1y", 1)
	require.NoError(t, reg.Replace(inst))

	reg.Release("price/AAPL/1y")
	assert.Nil(t, reg.Get("price/AAPL/1y"))
	assert.True(t, inst.Released())
	assert.Equal(t, 0, reg.Len())

	// releasing a missing target is a no-op
	reg.Release("price/MSFT/1y")
}

func Test_Registry_ReleaseAll(t *testing.T) {
	reg := NewRegistry()

	a := renderInstance(t, "price/AAPL/1y", 1)
	b := renderInstance(t, "price/MSFT/1y", 1)
	require.NoError(t, reg.Replace(a))
	require.NoError(t, reg.Replace(b))

	reg.ReleaseAll()
	assert.Equal(t, 0, reg.Len())
	assert.True(t, a.Released())
	assert.True(t, b.Released())
}
