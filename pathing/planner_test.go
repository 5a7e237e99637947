package pathing_test

import (
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/wayfinder/builder"
	"github.com/katalvlaran/wayfinder/graph"
	"github.com/katalvlaran/wayfinder/pathing"
)

// PlannerSuite runs the orchestrator over a connected grid and a split line.
type PlannerSuite struct {
	suite.Suite
	grid  *graph.Graph
	split *graph.Graph
}

func (s *PlannerSuite) SetupTest() {
	var err error
	// 6─7─8
	// │ │ │
	// 3─4─5
	// │ │ │
	// 0─1─2
	s.grid, err = builder.Grid(3, 3)
	require.NoError(s.T(), err)

	// 0─1   2─3
	pos := []orb.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}
	s.split, err = builder.Undirected(pos, [][2]int{{0, 1}, {2, 3}})
	require.NoError(s.T(), err)
}

// TestOrderAndFigures checks entry order, hop counts and weights on the grid.
func (s *PlannerSuite) TestOrderAndFigures() {
	p, err := pathing.NewPlanner(
		[]pathing.Scenario{{Graph: s.grid, Target: 2}},
		pathing.WithMaxRetries(500),
	)
	require.NoError(s.T(), err)

	plan, err := p.Plan(0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, plan.Index)
	require.Equal(s.T(), 2, plan.Target)

	var order []pathing.Strategy
	for _, e := range plan.Entries {
		order = append(order, e.Strategy)
		require.True(s.T(), e.Found(), "%s found nothing", e.Strategy)
		require.NoError(s.T(), s.grid.VerifyPath(e.Path, 2), "%s", e.Strategy)
		require.Equal(s.T(), e.Path.Hops(), e.Hops)
	}
	require.Equal(s.T(), []pathing.Strategy{
		pathing.StrategyRandom, pathing.StrategyDFS, pathing.StrategyBFS, pathing.StrategyDijkstra,
	}, order)

	bfsEntry, ok := plan.Entry(pathing.StrategyBFS)
	require.True(s.T(), ok)
	require.Equal(s.T(), graph.Path{0, 1, 2, 5, 8}, bfsEntry.Path)
	require.Equal(s.T(), 4, bfsEntry.Hops)
	require.InDelta(s.T(), 4.0, bfsEntry.Weight, 1e-9)

	dfsEntry, _ := plan.Entry(pathing.StrategyDFS)
	require.Equal(s.T(), graph.Path{0, 1, 2, 1, 0, 3, 4, 5, 8}, dfsEntry.Path)
	require.InDelta(s.T(), 8.0, dfsEntry.Weight, 1e-9)

	dij, _ := plan.Entry(pathing.StrategyDijkstra)
	require.InDelta(s.T(), plan.Reference, dij.Weight, 1e-9)
	require.InDelta(s.T(), 4.0, plan.Reference, 1e-9)

	for _, e := range plan.Entries {
		require.GreaterOrEqual(s.T(), e.Weight+1e-9, plan.Reference, "%s beats the optimum", e.Strategy)
	}
}

// TestTestPathFirst verifies a host path is listed ahead of every engine.
func (s *PlannerSuite) TestTestPathFirst() {
	p, err := pathing.NewPlanner([]pathing.Scenario{
		{Graph: s.grid, Target: 2, TestPath: graph.Path{0, 1, 2, 5, 8}},
	})
	require.NoError(s.T(), err)

	plan, err := p.Plan(0)
	require.NoError(s.T(), err)
	require.Len(s.T(), plan.Entries, 5)
	require.Equal(s.T(), pathing.StrategyTest, plan.Entries[0].Strategy)
	require.Equal(s.T(), graph.Path{0, 1, 2, 5, 8}, plan.Entries[0].Path)
	require.Equal(s.T(), 4, plan.Entries[0].Hops)
}

// TestTestPathOwnedByCaller edits returned paths and plans again.
func (s *PlannerSuite) TestTestPathOwnedByCaller() {
	g, err := builder.Line(4)
	require.NoError(s.T(), err)
	p, err := pathing.NewPlanner([]pathing.Scenario{{Graph: g, Target: 2, TestPath: graph.Path{0, 1, 2, 3}}})
	require.NoError(s.T(), err)

	first, err := p.Plan(0)
	require.NoError(s.T(), err)
	first.Entries[0].Path[1] = 99

	sc, err := p.Scenario(0)
	require.NoError(s.T(), err)
	sc.TestPath[2] = 99

	second, err := p.Plan(0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), graph.Path{0, 1, 2, 3}, second.Entries[0].Path)
	require.InDelta(s.T(), 3.0, second.Entries[0].Weight, 1e-9)

	again, err := p.Scenario(0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), graph.Path{0, 1, 2, 3}, again.TestPath)
}

// TestInvalidTestPathKept keeps a host path that breaks adjacency.
func (s *PlannerSuite) TestInvalidTestPathKept() {
	p, err := pathing.NewPlanner([]pathing.Scenario{
		{Graph: s.grid, Target: 2, TestPath: graph.Path{0, 8}},
	})
	require.NoError(s.T(), err)

	plan, err := p.Plan(0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), pathing.StrategyTest, plan.Entries[0].Strategy)
	require.InDelta(s.T(), math.Sqrt(8), plan.Entries[0].Weight, 1e-9)
}

// TestNoPath reports empty entries and an infinite reference on a split graph.
func (s *PlannerSuite) TestNoPath() {
	p, err := pathing.NewPlanner(
		[]pathing.Scenario{{Graph: s.split, Target: 1}},
		pathing.WithMaxRetries(3),
	)
	require.NoError(s.T(), err)

	plan, err := p.Plan(0)
	require.NoError(s.T(), err)
	require.Len(s.T(), plan.Entries, 4)
	for _, e := range plan.Entries {
		require.False(s.T(), e.Found(), "%s", e.Strategy)
		require.Zero(s.T(), e.Hops)
		require.True(s.T(), math.IsInf(e.Weight, 1))
	}
	require.True(s.T(), math.IsInf(plan.Reference, 1))
}

// TestIndexing covers scenario lookup and out-of-range indices.
func (s *PlannerSuite) TestIndexing() {
	p, err := pathing.NewPlanner([]pathing.Scenario{
		{Graph: s.grid, Target: 4},
		{Graph: s.split, Target: 1},
	})
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, p.Len())

	sc, err := p.Scenario(1)
	require.NoError(s.T(), err)
	require.Same(s.T(), s.split, sc.Graph)

	_, err = p.Plan(2)
	require.ErrorIs(s.T(), err, pathing.ErrIndexOutOfRange)
	_, err = p.AllPairs(-1)
	require.ErrorIs(s.T(), err, pathing.ErrIndexOutOfRange)

	apsp, err := p.AllPairs(0)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 4.0, apsp.Dist[0][8], 1e-9)
}

// TestConstructionErrors covers every rejected configuration.
func (s *PlannerSuite) TestConstructionErrors() {
	_, err := pathing.NewPlanner(nil)
	require.ErrorIs(s.T(), err, pathing.ErrNoScenarios)

	_, err = pathing.NewPlanner([]pathing.Scenario{{Graph: nil}})
	require.ErrorIs(s.T(), err, graph.ErrNilGraph)

	_, err = pathing.NewPlanner([]pathing.Scenario{{Graph: s.grid, Target: 9}})
	require.ErrorIs(s.T(), err, graph.ErrTargetOutOfRange)

	_, err = pathing.NewPlanner([]pathing.Scenario{{Graph: s.grid, Target: 2, TestPath: graph.Path{0, 42}}})
	require.ErrorIs(s.T(), err, pathing.ErrBadTestPath)

	_, err = pathing.NewPlanner([]pathing.Scenario{{Graph: s.grid, Target: 2}}, pathing.WithMaxRetries(0))
	require.ErrorIs(s.T(), err, pathing.ErrOptionViolation)
}

// TestSeedDeterminism expects equal seeds to yield equal random routes.
func (s *PlannerSuite) TestSeedDeterminism() {
	g, err := builder.Grid(4, 4)
	require.NoError(s.T(), err)
	sc := []pathing.Scenario{{Graph: g, Target: 5}}

	a, err := pathing.NewPlanner(sc, pathing.WithSeed(7), pathing.WithMaxRetries(200))
	require.NoError(s.T(), err)
	b, err := pathing.NewPlanner(sc, pathing.WithRand(rand.New(rand.NewSource(7))), pathing.WithMaxRetries(200))
	require.NoError(s.T(), err)

	pa, err := a.Plan(0)
	require.NoError(s.T(), err)
	pb, err := b.Plan(0)
	require.NoError(s.T(), err)

	ra, _ := pa.Entry(pathing.StrategyRandom)
	rb, _ := pb.Entry(pathing.StrategyRandom)
	require.Equal(s.T(), ra.Path, rb.Path)
}

// TestConcurrentPlans shares one planner between goroutines.
func (s *PlannerSuite) TestConcurrentPlans() {
	p, err := pathing.NewPlanner([]pathing.Scenario{{Graph: s.grid, Target: 2}})
	require.NoError(s.T(), err)

	const workers = 8
	var wg sync.WaitGroup
	plans := make([]*pathing.Plan, workers)
	errs := make([]error, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			plans[w], errs[w] = p.Plan(0)
		}(w)
	}
	wg.Wait()

	for w := 0; w < workers; w++ {
		require.NoError(s.T(), errs[w])
		e, _ := plans[w].Entry(pathing.StrategyBFS)
		require.Equal(s.T(), graph.Path{0, 1, 2, 5, 8}, e.Path)
	}
}

func TestPlannerSuite(t *testing.T) {
	suite.Run(t, new(PlannerSuite))
}
