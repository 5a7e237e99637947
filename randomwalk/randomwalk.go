package randomwalk

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/wayfinder/graph"
)

// walker holds per-call state reused across attempts.
type walker struct {
	g          *graph.Graph
	rng        *rand.Rand
	visited    []bool
	candidates []int
}

// Path is Walk without attempt bookkeeping.
func Path(g *graph.Graph, target int, opts ...Option) (graph.Path, error) {
	res, err := Walk(g, target, opts...)
	if err != nil {
		return nil, err
	}
	return res.Path, nil
}

// Walk tries up to MaxRetries times to build a start-inclusive,
// exit-inclusive random path through target.
func Walk(g *graph.Graph, target int, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := graph.CheckTarget(g, target); err != nil {
		return nil, fmt.Errorf("randomwalk: %w", err)
	}
	if o.Rand == nil {
		o.Rand = rngFromSeed(0)
	}

	w := &walker{
		g:       g,
		rng:     o.Rand,
		visited: make([]bool, g.Len()),
	}
	res := &Result{}
	for res.Attempts < o.MaxRetries {
		res.Attempts++
		p, ok := w.attempt(target)
		if !ok {
			continue
		}
		if err := g.VerifyPath(p, target); err != nil {
			return nil, fmt.Errorf("randomwalk: postcondition: %w", err)
		}
		res.Path = p
		return res, nil
	}

	return res, nil
}

// attempt runs both legs with a fresh shared visited set.
func (w *walker) attempt(target int) (graph.Path, bool) {
	clear(w.visited)
	start, exit := w.g.Start(), w.g.Exit()
	w.visited[start] = true

	path := graph.Path{start}
	path, ok := w.leg(path, start, target)
	if !ok {
		return nil, false
	}
	return w.leg(path, target, exit)
}

// leg extends path from → to one random unvisited neighbor at a time.
func (w *walker) leg(path graph.Path, from, to int) (graph.Path, bool) {
	for cur := from; cur != to; {
		w.candidates = w.candidates[:0]
		for _, nb := range w.g.Adjacent(cur) {
			if !w.visited[nb] {
				w.candidates = append(w.candidates, nb)
			}
		}
		if len(w.candidates) == 0 {
			return nil, false
		}
		cur = pick(w.rng, w.candidates)
		w.visited[cur] = true
		path = append(path, cur)
	}
	return path, true
}
