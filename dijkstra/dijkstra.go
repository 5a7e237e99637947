package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/wayfinder/graph"
)

// Path returns the minimum-weight start-inclusive, exit-inclusive path
// through target, or an empty path if either leg is unreachable.
func Path(g *graph.Graph, target int) (graph.Path, error) {
	if err := graph.CheckTarget(g, target); err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}
	first, _ := newRunner(g, g.Start()).run(target)
	second, _ := newRunner(g, target).run(g.Exit())
	return graph.Join(first, second), nil
}

// Leg returns the minimum-weight from → to path and its weight. When to is
// unreachable the path is empty and the weight is +Inf.
func Leg(g *graph.Graph, from, to int) (graph.Path, float64, error) {
	if err := graph.CheckNode(g, from); err != nil {
		return nil, 0, fmt.Errorf("dijkstra: from: %w", err)
	}
	if err := graph.CheckNode(g, to); err != nil {
		return nil, 0, fmt.Errorf("dijkstra: to: %w", err)
	}
	p, w := newRunner(g, from).run(to)
	return p, w, nil
}

// runner holds the mutable state for a single leg.
type runner struct {
	g       *graph.Graph
	source  int
	dist    []float64
	prev    []int
	visited []bool
	pq      nodePQ
	seq     int
}

func newRunner(g *graph.Graph, source int) *runner {
	n := g.Len()
	r := &runner{
		g:       g,
		source:  source,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.prev[i] = -1
	}
	r.dist[source] = 0
	r.push(source, 0)
	return r
}

func (r *runner) push(id int, d float64) {
	heap.Push(&r.pq, nodeItem{id: id, dist: d, seq: r.seq})
	r.seq++
}

// run drains the heap completely, then rebuilds the path to goal.
func (r *runner) run(goal int) (graph.Path, float64) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		if r.visited[item.id] {
			continue
		}
		r.visited[item.id] = true
		r.relax(item.id)
	}

	if math.IsInf(r.dist[goal], 1) {
		return nil, math.Inf(1)
	}
	var rev graph.Path
	for cur := goal; cur != -1; cur = r.prev[cur] {
		rev = append(rev, cur)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev, r.dist[goal]
}

// relax improves every unfinalized neighbor of u reachable more cheaply
// through u.
func (r *runner) relax(u int) {
	du := r.dist[u]
	for _, v := range r.g.Adjacent(u) {
		if r.visited[v] {
			continue
		}
		nd := du + r.g.Weight(u, v)
		if nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		r.push(v, nd)
	}
}
