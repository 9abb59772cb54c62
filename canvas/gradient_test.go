package canvas

import (
	"testing"

	"github.com/gogpu/shape/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradientKey(t *testing.T) {
	south := GradientDef{Start: "#FFFFFF", End: "#000000", StartAlpha: 1, EndAlpha: 0.5, Direction: geom.DirectionSouth}
	assert.Equal(t, GradientKey("grad-ffffff-1-000000-0.5-s"), south.Key())

	none := south
	none.Direction = geom.DirectionNone
	assert.Equal(t, south.Key(), none.Key(), "no direction means south")

	north := GradientDef{Start: "#000000", End: "#ffffff", StartAlpha: 0.5, EndAlpha: 1, Direction: geom.DirectionNorth}
	assert.Equal(t, south.Key(), north.Key(), "north is south with swapped stops")

	west := GradientDef{Start: "red", End: "blue", StartAlpha: 1, EndAlpha: 1, Direction: geom.DirectionWest}
	assert.Equal(t, GradientKey("grad-blue-1-red-1-e"), west.Key())
}

func TestGradientTableLifecycle(t *testing.T) {
	table := NewGradientTable()
	def := GradientDef{Start: "#ffffff", End: "#000000", StartAlpha: 1, EndAlpha: 1, Direction: geom.DirectionEast}
	key := table.Define(def)
	assert.Equal(t, key, table.Define(def), "Define is idempotent")
	assert.Equal(t, 1, table.Len())

	got, ok := table.Lookup(key)
	require.True(t, ok)
	assert.Equal(t, geom.DirectionEast, got.Direction)

	require.NoError(t, table.Retain(key))
	require.NoError(t, table.Retain(key))
	assert.Equal(t, 2, table.RefCount(key))

	removed, err := table.Release(key)
	require.NoError(t, err)
	assert.False(t, removed)

	removed, err = table.Release(key)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, 0, table.Len())
	assert.Equal(t, 0, table.RefCount(key))

	_, err = table.Release(key)
	assert.ErrorIs(t, err, ErrUnknownGradient)
	assert.ErrorIs(t, table.Retain(key), ErrUnknownGradient)
}

func TestGradientTableUnderflow(t *testing.T) {
	table := NewGradientTable()
	key := table.Define(GradientDef{Start: "red", End: "blue", Direction: geom.DirectionSouth})
	_, err := table.Release(key)
	assert.ErrorIs(t, err, ErrRefCountUnderflow)
	assert.Equal(t, 1, table.Len(), "failed release keeps the definition")
}

func TestGradientTableKeysSorted(t *testing.T) {
	table := NewGradientTable()
	table.Define(GradientDef{Start: "white", End: "red"})
	table.Define(GradientDef{Start: "black", End: "red"})
	keys := table.Keys()
	require.Len(t, keys, 2)
	assert.Less(t, string(keys[0]), string(keys[1]))
}
