package pathing

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
	"sync"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/wayfinder/bfs"
	"github.com/katalvlaran/wayfinder/dfs"
	"github.com/katalvlaran/wayfinder/dijkstra"
	"github.com/katalvlaran/wayfinder/graph"
	"github.com/katalvlaran/wayfinder/matrix"
	"github.com/katalvlaran/wayfinder/randomwalk"
)

// Planner runs every engine over an indexed collection of scenarios.
type Planner struct {
	scenarios  []Scenario
	maxRetries int

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// NewPlanner validates scenarios and returns a Planner over a copy of them.
//
// Errors: ErrNoScenarios, ErrOptionViolation, graph.ErrNilGraph,
// graph.ErrTargetOutOfRange, ErrBadTestPath (all wrapped with the index).
func NewPlanner(scenarios []Scenario, opts ...Option) (*Planner, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(scenarios) == 0 {
		return nil, ErrNoScenarios
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(defaultSeed))
	}

	p := &Planner{
		scenarios:  make([]Scenario, len(scenarios)),
		maxRetries: o.MaxRetries,
		rng:        o.Rand,
	}
	for i, sc := range scenarios {
		if err := graph.CheckTarget(sc.Graph, sc.Target); err != nil {
			return nil, fmt.Errorf("pathing: scenario %d: %w", i, err)
		}
		for _, v := range sc.TestPath {
			if v < 0 || v >= sc.Graph.Len() {
				return nil, fmt.Errorf("%w: scenario %d lists %d (n=%d)", ErrBadTestPath, i, v, sc.Graph.Len())
			}
		}
		sc.TestPath = slices.Clone(sc.TestPath)
		p.scenarios[i] = sc
	}

	return p, nil
}

// Len returns the number of scenarios.
func (p *Planner) Len() int { return len(p.scenarios) }

// Scenario returns scenario i.
func (p *Planner) Scenario(i int) (Scenario, error) {
	if i < 0 || i >= len(p.scenarios) {
		return Scenario{}, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, len(p.scenarios))
	}
	sc := p.scenarios[i]
	sc.TestPath = slices.Clone(sc.TestPath)
	return sc, nil
}

// Plan runs the engines on scenario i. An engine that finds nothing
// contributes an entry with an empty path.
func (p *Planner) Plan(i int) (*Plan, error) {
	sc, err := p.Scenario(i)
	if err != nil {
		return nil, err
	}
	g, t := sc.Graph, sc.Target

	plan := &Plan{Index: i, Target: t, Entries: make([]Entry, 0, 5)}
	if !sc.TestPath.Empty() {
		if verr := g.VerifyPath(sc.TestPath, t); verr != nil {
			klog.Warningf("scenario %d: test path does not satisfy the route contract: %v", i, verr)
		}
		plan.Entries = append(plan.Entries, entry(g, StrategyTest, sc.TestPath))
	}

	walk, err := p.walk(g, t)
	if err != nil {
		return nil, fmt.Errorf("pathing: scenario %d: %w", i, err)
	}
	if walk.Path.Empty() {
		klog.Warningf("scenario %d: random walk failed after %d attempts", i, walk.Attempts)
	} else {
		klog.V(4).Infof("scenario %d: random walk succeeded on attempt %d", i, walk.Attempts)
	}
	plan.Entries = append(plan.Entries, entry(g, StrategyRandom, walk.Path))

	engines := []struct {
		s   Strategy
		run func(*graph.Graph, int) (graph.Path, error)
	}{
		{StrategyDFS, dfs.Path},
		{StrategyBFS, bfs.Path},
		{StrategyDijkstra, dijkstra.Path},
	}
	for _, e := range engines {
		path, err := e.run(g, t)
		if err != nil {
			return nil, fmt.Errorf("pathing: scenario %d: %s: %w", i, e.s, err)
		}
		plan.Entries = append(plan.Entries, entry(g, e.s, path))
	}

	paths, err := p.AllPairs(i)
	if err != nil {
		return nil, err
	}
	plan.Reference = paths.Dist[g.Start()][t] + paths.Dist[t][g.Exit()]

	if klog.V(2).Enabled() {
		for _, e := range plan.Entries {
			klog.Infof("scenario %d: %-8s hops=%d weight=%.3f path=%v", i, e.Strategy, e.Hops, e.Weight, e.Path)
		}
		klog.Infof("scenario %d: reference weight=%.3f", i, plan.Reference)
	}
	return plan, nil
}

// AllPairs runs Floyd–Warshall over scenario i's Euclidean adjacency.
func (p *Planner) AllPairs(i int) (*matrix.Paths, error) {
	sc, err := p.Scenario(i)
	if err != nil {
		return nil, err
	}
	adj, err := matrix.FromWeightedList(sc.Graph.WeightedList())
	if err != nil {
		return nil, fmt.Errorf("pathing: scenario %d: %w", i, err)
	}
	return matrix.AllPairs(adj)
}

func (p *Planner) walk(g *graph.Graph, t int) (*randomwalk.Result, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return randomwalk.Walk(g, t,
		randomwalk.WithRand(p.rng),
		randomwalk.WithMaxRetries(p.maxRetries),
	)
}

func entry(g *graph.Graph, s Strategy, path graph.Path) Entry {
	e := Entry{Strategy: s, Path: path}
	if !path.Empty() {
		e.Hops = path.Hops()
		e.Weight = path.Weight(g)
	} else {
		e.Weight = math.Inf(1)
	}
	return e
}
