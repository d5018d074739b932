package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/airgraph/core"
	"github.com/katalvlaran/airgraph/matrix"
)

func TestDense_Bounds(t *testing.T) {
	_, err := matrix.NewDense(-1, 2)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	require.NoError(t, m.Set(1, 2, 7.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.5, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)

	c := m.Clone()
	require.NoError(t, c.Set(1, 2, 0))
	v, _ = m.At(1, 2)
	assert.Equal(t, 7.5, v, "clone must not alias")
	assert.Equal(t, "[0, 0, 0]\n[0, 0, 7.5]\n", m.String())
}

func TestFloydWarshall_Errors(t *testing.T) {
	assert.ErrorIs(t, matrix.FloydWarshall(nil), matrix.ErrNilMatrix)
	ns, _ := matrix.NewDense(3, 4)
	assert.ErrorIs(t, matrix.FloydWarshall(ns), matrix.ErrNonSquare)
}

func TestAllPairs_Triangle(t *testing.T) {
	g, err := core.FromEdges([]core.Edge{
		{From: "A", To: "B", Weight: 100},
		{From: "B", To: "C", Weight: 150},
		{From: "A", To: "C", Weight: 400},
		{From: "X", To: "Y", Weight: 5},
	})
	require.NoError(t, err)

	d, err := matrix.AllPairs(g)
	require.NoError(t, err)
	require.Equal(t, 5, d.Rows())

	at := func(u, v string) float64 {
		i, _ := g.Index(u)
		j, _ := g.Index(v)
		x, err := d.At(i, j)
		require.NoError(t, err)
		return x
	}
	assert.Equal(t, 250.0, at("A", "C"))
	assert.Equal(t, 250.0, at("C", "A"))
	assert.Equal(t, 0.0, at("B", "B"))
	assert.True(t, math.IsInf(at("A", "X"), 1))
	assert.Equal(t, 5.0, at("Y", "X"))
}

func TestAllPairs_Empty(t *testing.T) {
	_, err := matrix.AllPairs(nil)
	assert.ErrorIs(t, err, matrix.ErrGraphNil)

	d, err := matrix.AllPairs(core.NewGraph())
	require.NoError(t, err)
	assert.Zero(t, d.Rows())
}
