package randomwalk_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfinder/builder"
	"github.com/katalvlaran/wayfinder/graph"
	"github.com/katalvlaran/wayfinder/randomwalk"
)

func TestPath_ValidOnGrid(t *testing.T) {
	g, err := builder.Grid(4, 4)
	require.NoError(t, err)
	const target = 5

	for seed := int64(1); seed <= 100; seed++ {
		p, err := randomwalk.Path(g, target, randomwalk.WithSeed(seed), randomwalk.WithMaxRetries(500))
		require.NoError(t, err)
		require.False(t, p.Empty(), "seed %d", seed)

		assert.Equal(t, g.Start(), p[0])
		assert.Equal(t, g.Exit(), p[len(p)-1])
		assert.True(t, p.Contains(target))
		for i := 1; i < len(p); i++ {
			assert.True(t, g.HasEdge(p[i-1], p[i]), "seed %d hop %d", seed, i)
		}
	}
}

func TestPath_IsSimple(t *testing.T) {
	g, err := builder.Grid(4, 4)
	require.NoError(t, err)

	r := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		p, err := randomwalk.Path(g, 10, randomwalk.WithRand(r))
		require.NoError(t, err)
		seen := map[int]bool{}
		for _, v := range p {
			require.False(t, seen[v], "node %d repeated in %v", v, p)
			seen[v] = true
		}
	}
}

func TestPath_SeedDeterminism(t *testing.T) {
	g, err := builder.Grid(5, 5)
	require.NoError(t, err)

	a, err := randomwalk.Path(g, 12, randomwalk.WithSeed(7))
	require.NoError(t, err)
	b, err := randomwalk.Path(g, 12, randomwalk.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := randomwalk.Path(g, 12)
	require.NoError(t, err)
	d, err := randomwalk.Path(g, 12, randomwalk.WithSeed(0))
	require.NoError(t, err)
	assert.Equal(t, c, d, "no source and seed 0 share the default seed")
}

func TestPath_ExploresDifferentRoutes(t *testing.T) {
	g, err := builder.Grid(3, 3)
	require.NoError(t, err)

	r := rand.New(rand.NewSource(3))
	distinct := map[string]bool{}
	for i := 0; i < 40; i++ {
		p, err := randomwalk.Path(g, 4, randomwalk.WithRand(r))
		require.NoError(t, err)
		distinct[fmt.Sprint(p)] = true
	}
	assert.Greater(t, len(distinct), 1)
}

// TestWalk_ExhaustsRetries uses a graph where the first leg always burns
// the only route to the exit:
//
//	0 ─ 1 ─ 2(target)
//	    │
//	    3(exit)
func TestWalk_ExhaustsRetries(t *testing.T) {
	g, err := builder.Undirected(make([]orb.Point, 4), [][2]int{{0, 1}, {1, 2}, {1, 3}})
	require.NoError(t, err)

	res, err := randomwalk.Walk(g, 2, randomwalk.WithMaxRetries(7), randomwalk.WithSeed(9))
	require.NoError(t, err)
	assert.Empty(t, res.Path)
	assert.Equal(t, 7, res.Attempts)

	p, err := randomwalk.Path(g, 2)
	require.NoError(t, err)
	assert.Empty(t, p)
}

func TestWalk_TargetAtEndpoints(t *testing.T) {
	g, err := builder.Line(4)
	require.NoError(t, err)

	p, err := randomwalk.Path(g, 0)
	require.NoError(t, err)
	assert.Equal(t, graph.Path{0, 1, 2, 3}, p)

	res, err := randomwalk.Walk(g, 3)
	require.NoError(t, err)
	assert.Equal(t, graph.Path{0, 1, 2, 3}, res.Path)
	assert.Equal(t, 1, res.Attempts)
}

func TestWalk_Errors(t *testing.T) {
	g, err := builder.Line(3)
	require.NoError(t, err)

	_, err = randomwalk.Walk(nil, 1)
	assert.ErrorIs(t, err, graph.ErrNilGraph)
	_, err = randomwalk.Walk(g, 3)
	assert.ErrorIs(t, err, graph.ErrTargetOutOfRange)
	_, err = randomwalk.Walk(g, 1, randomwalk.WithMaxRetries(0))
	assert.ErrorIs(t, err, randomwalk.ErrOptionViolation)
}
