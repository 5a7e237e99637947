package graph

import (
	"slices"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/tidwall/rtree"
)

// Locator answers nearest-node queries over a Graph's positions.
// It is built once and is read-only afterwards.
type Locator struct {
	g    *Graph
	tree rtree.RTreeG[int]
}

// NewLocator indexes every node position of g.
// Complexity: O(V log V).
func NewLocator(g *Graph) (*Locator, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	l := &Locator{g: g}
	for i, p := range g.pos {
		pt := [2]float64{p[0], p[1]}
		l.tree.Insert(pt, pt, i)
	}
	return l, nil
}

// Nearest returns the node closest to p and its Euclidean distance.
// Ties resolve to whichever node the index yields first.
func (l *Locator) Nearest(p orb.Point) (int, float64) {
	q := [2]float64{p[0], p[1]}
	best := -1
	l.tree.Nearby(
		rtree.BoxDist[float64, int](q, q, nil),
		func(_, _ [2]float64, node int, _ float64) bool {
			best = node
			return false
		},
	)
	if best < 0 {
		return -1, 0
	}
	return best, planar.Distance(p, l.g.pos[best])
}

// Within returns every node whose position lies inside bound, in
// ascending index order.
func (l *Locator) Within(bound orb.Bound) []int {
	var out []int
	l.tree.Search(
		[2]float64{bound.Min[0], bound.Min[1]},
		[2]float64{bound.Max[0], bound.Max[1]},
		func(_, _ [2]float64, node int) bool {
			out = append(out, node)
			return true
		},
	)
	slices.Sort(out)
	return out
}
