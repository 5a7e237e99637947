package pathing

import (
	"errors"

	"github.com/katalvlaran/wayfinder/graph"
)

var (
	// ErrNoScenarios is returned by NewPlanner when given nothing to plan.
	ErrNoScenarios = errors.New("pathing: no scenarios")

	// ErrIndexOutOfRange indicates a scenario index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("pathing: scenario index out of range")

	// ErrBadTestPath indicates a test path naming a node outside the graph.
	ErrBadTestPath = errors.New("pathing: test path references unknown node")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathing: invalid option supplied")
)

// Strategy names the engine that produced an Entry.
type Strategy string

const (
	StrategyTest     Strategy = "test"
	StrategyRandom   Strategy = "random"
	StrategyDFS      Strategy = "dfs"
	StrategyBFS      Strategy = "bfs"
	StrategyDijkstra Strategy = "dijkstra"
)

// Scenario is one graph the host may switch to.
type Scenario struct {
	Name   string
	Graph  *graph.Graph
	Target int

	// TestPath is an optional host-supplied path listed first in every plan.
	TestPath graph.Path
}

// Entry is one engine's answer for a scenario.
type Entry struct {
	Strategy Strategy
	Path     graph.Path // empty: no path found
	Hops     int
	Weight   float64 // +Inf when Path is empty
}

// Found reports whether the entry holds a path.
func (e Entry) Found() bool { return !e.Path.Empty() }

// Plan is the full set of paths for one scenario.
type Plan struct {
	Index   int
	Target  int
	Entries []Entry

	// Reference is the optimal start→target→exit weight, +Inf when the
	// target or the exit is unreachable.
	Reference float64
}

// Entry returns the entry produced by s, if any.
func (p *Plan) Entry(s Strategy) (Entry, bool) {
	for _, e := range p.Entries {
		if e.Strategy == s {
			return e, true
		}
	}
	return Entry{}, false
}
