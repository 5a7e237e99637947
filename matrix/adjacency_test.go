package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfinder/graph"
	"github.com/katalvlaran/wayfinder/matrix"
)

func TestNew_BadShape(t *testing.T) {
	_, err := matrix.New(0)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.FromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.FromWeightedList(nil)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestFromRows_NonSquare(t *testing.T) {
	_, err := matrix.FromRows([][]float64{{0, 1}, {1}})
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestFromWeightedList(t *testing.T) {
	a, err := matrix.FromWeightedList([][]graph.WeightedEdge{
		{{To: 1, Weight: 2.5}, {To: 2, Weight: 1}, {To: 1, Weight: 4}},
		{{To: 0, Weight: 4}},
		{},
	})
	require.NoError(t, err)

	assert.Equal(t, [][]float64{
		{0, 4, 1},
		{4, 0, 0},
		{0, 0, 0},
	}, a.Rows(), "duplicate neighbor keeps its last weight")

	w, ok, err := a.At(0, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 4.0, w)

	_, ok, err = a.At(2, 0)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFromWeightedList_OutOfRange(t *testing.T) {
	_, err := matrix.FromWeightedList([][]graph.WeightedEdge{{{To: 5, Weight: 1}}})
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestSet_WeightPolicy(t *testing.T) {
	a, err := matrix.New(2)
	require.NoError(t, err)

	assert.ErrorIs(t, a.Set(0, 1, math.NaN()), matrix.ErrInvalidWeight)
	assert.ErrorIs(t, a.Set(0, 1, math.Inf(-1)), matrix.ErrInvalidWeight)
	assert.ErrorIs(t, a.Set(0, 2, 1), matrix.ErrOutOfRange)

	require.NoError(t, a.Set(0, 1, 0))
	_, ok, _ := a.At(0, 1)
	assert.True(t, ok, "zero weight is a real edge via Set")

	require.NoError(t, a.Set(0, 1, math.Inf(1)))
	_, ok, _ = a.At(0, 1)
	assert.False(t, ok, "+Inf removes the edge")

	require.NoError(t, a.Set(1, 0, 3))
	require.NoError(t, a.Clear(1, 0))
	_, ok, _ = a.At(1, 0)
	assert.False(t, ok)
	assert.ErrorIs(t, a.Clear(3, 0), matrix.ErrOutOfRange)
	_, _, err = a.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}
