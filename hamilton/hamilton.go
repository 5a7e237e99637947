package hamilton

import (
	"fmt"

	"github.com/katalvlaran/wayfinder/graph"
	"github.com/katalvlaran/wayfinder/permute"
)

// Cycles enumerates all fixed-endpoint Hamiltonian routes of g.
// The graph is only read.
func Cycles(g *graph.Graph, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g == nil {
		return nil, fmt.Errorf("hamilton: %w", graph.ErrNilGraph)
	}

	interior := g.Len() - 2
	if o.MaxInterior > 0 && interior > o.MaxInterior {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooLarge, interior, o.MaxInterior)
	}

	gen, err := permute.NewSJT(interior)
	if err != nil {
		return nil, fmt.Errorf("hamilton: %w", err)
	}

	res := &Result{}
	candidate := make(graph.Path, g.Len())
	candidate[0], candidate[g.Len()-1] = g.Start(), g.Exit()
	for perm, ok := gen.Next(); ok; perm, ok = gen.Next() {
		if res.Checked%checkEvery == 0 {
			if err = o.Ctx.Err(); err != nil {
				return nil, err
			}
		}
		res.Checked++

		copy(candidate[1:], perm)
		if valid(g, candidate) {
			res.Cycles = append(res.Cycles, append(graph.Path(nil), candidate...))
		}
	}

	return res, nil
}

// valid reports whether every consecutive pair of p is an edge of g.
func valid(g *graph.Graph, p graph.Path) bool {
	for i := 1; i < len(p); i++ {
		if !g.HasEdge(p[i-1], p[i]) {
			return false
		}
	}
	return true
}
