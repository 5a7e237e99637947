package graph

import (
	"fmt"
	"slices"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"golang.org/x/exp/maps"
)

// New builds a Graph from per-node records. The input is copied; later
// changes to nodes do not affect the returned Graph.
//
// Neighbor lists are deduplicated, self-loops are dropped and the
// remaining indices are sorted ascending so every traversal is reproducible.
//
// Errors: ErrTooFewNodes, ErrNeighborOutOfRange.
// Complexity: O(V + E log E).
func New(nodes []Node) (*Graph, error) {
	n := len(nodes)
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewNodes, n)
	}

	g := &Graph{
		pos:  make([]orb.Point, n),
		adj:  make([][]int, n),
		sets: make([]map[int]struct{}, n),
	}
	for i, node := range nodes {
		g.pos[i] = node.Pos
		set := make(map[int]struct{}, len(node.Neighbors))
		for _, nb := range node.Neighbors {
			if nb < 0 || nb >= n {
				return nil, fmt.Errorf("%w: node %d lists %d (n=%d)", ErrNeighborOutOfRange, i, nb, n)
			}
			if nb == i {
				continue
			}
			set[nb] = struct{}{}
		}
		keys := maps.Keys(set)
		slices.Sort(keys)
		g.adj[i] = keys
		g.sets[i] = set
	}

	return g, nil
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.pos) }

// Start returns the designated start node (always 0).
func (g *Graph) Start() int { return 0 }

// Exit returns the designated exit node (always Len()-1).
func (g *Graph) Exit() int { return len(g.pos) - 1 }

// Pos returns the coordinate of node i.
func (g *Graph) Pos(i int) orb.Point { return g.pos[i] }

// Neighbors returns a copy of node i's sorted neighbor list.
func (g *Graph) Neighbors(i int) []int { return slices.Clone(g.adj[i]) }

// Adjacent exposes node i's neighbor list without copying.
// Callers must treat the returned slice as read-only.
func (g *Graph) Adjacent(i int) []int { return g.adj[i] }

// HasEdge reports whether v is listed as a neighbor of u.
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= len(g.sets) {
		return false
	}
	_, ok := g.sets[u][v]
	return ok
}

// Weight returns the Euclidean distance between u and v. It is computed on
// every call and does not check that the edge exists.
func (g *Graph) Weight(u, v int) float64 {
	return planar.Distance(g.pos[u], g.pos[v])
}

// CheckTarget validates g and a target index at an API boundary.
func CheckTarget(g *Graph, target int) error {
	if g == nil {
		return ErrNilGraph
	}
	if target < 0 || target >= g.Len() {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrTargetOutOfRange, target, g.Len())
	}
	return nil
}

// CheckNode validates g and an arbitrary node index.
func CheckNode(g *Graph, i int) error {
	if g == nil {
		return ErrNilGraph
	}
	if i < 0 || i >= g.Len() {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrNodeOutOfRange, i, g.Len())
	}
	return nil
}

// WeightedList returns the adjacency list annotated with Euclidean weights,
// suitable for matrix.FromWeightedList.
func (g *Graph) WeightedList() [][]WeightedEdge {
	out := make([][]WeightedEdge, len(g.adj))
	for u, nbs := range g.adj {
		row := make([]WeightedEdge, len(nbs))
		for k, v := range nbs {
			row[k] = WeightedEdge{To: v, Weight: g.Weight(u, v)}
		}
		out[u] = row
	}
	return out
}
