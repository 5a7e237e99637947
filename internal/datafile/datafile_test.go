package datafile_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfinder/builder"
	"github.com/katalvlaran/wayfinder/graph"
	"github.com/katalvlaran/wayfinder/gridgraph"
	"github.com/katalvlaran/wayfinder/internal/datafile"
)

func TestLoad(t *testing.T) {
	f, err := datafile.Load(filepath.Join("testdata", "graphs.yaml"))
	require.NoError(t, err)
	require.Len(t, f.Graphs, 3)

	sq := f.Graphs[0]
	assert.Equal(t, "square", sq.Name)
	assert.Equal(t, 1, sq.Target)
	assert.Equal(t, []int{0, 1, 3}, sq.TestPath)
	assert.Equal(t, orb.Point{0, 1}, sq.Nodes[2].Pos)

	scs, err := f.Scenarios()
	require.NoError(t, err)
	require.Len(t, scs, 3)
	assert.Equal(t, "split", scs[1].Name)
	assert.Equal(t, 4, scs[0].Graph.Len())
	assert.True(t, scs[0].Graph.HasEdge(3, 2))
	assert.Equal(t, graph.Path{0, 1, 3}, scs[0].TestPath)
	assert.NoError(t, scs[0].Graph.VerifyPath(scs[0].TestPath, 1))
}

func TestLoad_Grid(t *testing.T) {
	f, err := datafile.Load(filepath.Join("testdata", "graphs.yaml"))
	require.NoError(t, err)
	scs, err := f.Scenarios()
	require.NoError(t, err)

	maze := scs[2]
	assert.Equal(t, "maze", maze.Name)
	require.Equal(t, 7, maze.Graph.Len())
	assert.Equal(t, 3, maze.Target)
	assert.True(t, maze.Graph.HasEdge(3, 5))
	assert.False(t, maze.Graph.HasEdge(0, 6), "wall between start and exit")
}

func TestScenarios_GridErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{
			name: "target on wall",
			data: "graphs:\n  - grid:\n      cells: [[1, 0, 1]]\n      start: [0, 0]\n      exit: [2, 0]\n      target: [1, 0]\n",
			want: gridgraph.ErrNotWalkable,
		},
		{
			name: "ragged",
			data: "graphs:\n  - grid:\n      cells: [[1, 1], [1]]\n      start: [0, 0]\n      exit: [1, 0]\n",
			want: gridgraph.ErrNonRectangular,
		},
		{
			name: "exit outside",
			data: "graphs:\n  - grid:\n      cells: [[1, 1]]\n      start: [0, 0]\n      exit: [4, 0]\n",
			want: gridgraph.ErrCellOutOfRange,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, err := datafile.Decode([]byte(tc.data))
			require.NoError(t, err)
			_, err = f.Scenarios()
			assert.ErrorIs(t, err, tc.want)
		})
	}

	f, err := datafile.Decode([]byte("graphs:\n  - nodes:\n      - pos: [0, 0]\n      - pos: [1, 0]\n    grid:\n      cells: [[1, 1]]\n      exit: [1, 0]\n"))
	require.NoError(t, err)
	_, err = f.Scenarios()
	assert.ErrorContains(t, err, "both nodes and grid")
}

func TestLoad_Missing(t *testing.T) {
	_, err := datafile.Load(filepath.Join("testdata", "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "absent.yaml")
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", "graphs: []"},
		{"unknown field", "graphs:\n  - target: 1\n    colour: red\n"},
		{"not yaml", "graphs: [\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := datafile.Decode([]byte(tc.data))
			assert.Error(t, err)
		})
	}
}

func TestScenarios_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{
			name: "single node",
			data: "graphs:\n  - target: 0\n    nodes:\n      - pos: [0, 0]\n",
			want: graph.ErrTooFewNodes,
		},
		{
			name: "neighbor out of range",
			data: "graphs:\n  - target: 0\n    nodes:\n      - pos: [0, 0]\n        neighbors: [5]\n      - pos: [1, 0]\n",
			want: graph.ErrNeighborOutOfRange,
		},
		{
			name: "target out of range",
			data: "graphs:\n  - target: 7\n    nodes:\n      - pos: [0, 0]\n      - pos: [1, 0]\n",
			want: graph.ErrTargetOutOfRange,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, err := datafile.Decode([]byte(tc.data))
			require.NoError(t, err)
			_, err = f.Scenarios()
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestEncode_FromGraph(t *testing.T) {
	g, err := builder.Grid(2, 2)
	require.NoError(t, err)

	out, err := datafile.Encode(&datafile.File{Graphs: []datafile.GraphSpec{datafile.FromGraph("grid", g, 1)}})
	require.NoError(t, err)

	f, err := datafile.Decode(out)
	require.NoError(t, err)
	scs, err := f.Scenarios()
	require.NoError(t, err)
	require.Len(t, scs, 1)

	back := scs[0].Graph
	require.Equal(t, g.Len(), back.Len())
	for i := 0; i < g.Len(); i++ {
		assert.Equal(t, g.Pos(i), back.Pos(i))
		assert.Equal(t, g.Neighbors(i), back.Neighbors(i))
	}
}
