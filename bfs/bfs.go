package bfs

import (
	"fmt"

	"github.com/katalvlaran/wayfinder/graph"
)

// walker encapsulates mutable state for one leg.
type walker struct {
	g       *graph.Graph
	queue   []int
	visited []bool
	parent  []int
}

// Path returns a start-inclusive, exit-inclusive path through target, or
// an empty path if either leg cannot reach its goal.
func Path(g *graph.Graph, target int) (graph.Path, error) {
	if err := graph.CheckTarget(g, target); err != nil {
		return nil, fmt.Errorf("bfs: %w", err)
	}
	first := leg(g, g.Start(), target)
	if first == nil {
		return nil, nil
	}
	second := leg(g, target, g.Exit())
	return graph.Join(first, second), nil
}

// Leg returns a minimum-hop path from → to, both inclusive, or an empty
// path if to is unreachable.
func Leg(g *graph.Graph, from, to int) (graph.Path, error) {
	if err := graph.CheckNode(g, from); err != nil {
		return nil, fmt.Errorf("bfs: from: %w", err)
	}
	if err := graph.CheckNode(g, to); err != nil {
		return nil, fmt.Errorf("bfs: to: %w", err)
	}
	return leg(g, from, to), nil
}

func leg(g *graph.Graph, from, to int) graph.Path {
	n := g.Len()
	w := &walker{
		g:       g,
		queue:   make([]int, 0, n),
		visited: make([]bool, n),
		parent:  make([]int, n),
	}
	w.enqueue(from, -1)

	for len(w.queue) > 0 {
		cur := w.dequeue()
		if cur == to {
			return w.trace(to)
		}
		for _, nb := range g.Adjacent(cur) {
			if !w.visited[nb] {
				w.enqueue(nb, cur)
			}
		}
	}
	return nil
}

// enqueue marks id visited and records how it was reached.
func (w *walker) enqueue(id, parent int) {
	w.visited[id] = true
	w.parent[id] = parent
	w.queue = append(w.queue, id)
}

func (w *walker) dequeue() int {
	id := w.queue[0]
	w.queue = w.queue[1:]
	return id
}

// trace rebuilds the leg ending at dest from parent links.
func (w *walker) trace(dest int) graph.Path {
	var rev graph.Path
	for cur := dest; cur != -1; cur = w.parent[cur] {
		rev = append(rev, cur)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}
