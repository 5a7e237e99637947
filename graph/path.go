package graph

import (
	"fmt"
	"slices"
)

// Empty reports whether p signals "no path found".
func (p Path) Empty() bool { return len(p) == 0 }

// Hops returns the number of edges in p.
func (p Path) Hops() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Contains reports whether node v appears anywhere in p.
func (p Path) Contains(v int) bool { return slices.Contains(p, v) }

// Weight sums the Euclidean length of every hop in p on g.
// An empty or single-node path weighs 0.
func (p Path) Weight(g *Graph) float64 {
	var total float64
	for i := 1; i < len(p); i++ {
		total += g.Weight(p[i-1], p[i])
	}
	return total
}

// Join concatenates two legs that share a seam node: the last node of
// first must equal the first node of second, and it appears once in the
// result. Either leg being empty yields an empty path.
func Join(first, second Path) Path {
	if len(first) == 0 || len(second) == 0 {
		return nil
	}
	out := make(Path, 0, len(first)+len(second)-1)
	out = append(out, first[:len(first)-1]...)
	return append(out, second...)
}

// VerifyPath checks the full-path contract on a non-empty p: it starts at
// Start(), contains target, ends at Exit() and every consecutive pair is
// an edge of g. The returned error wraps ErrInvalidPath.
func (g *Graph) VerifyPath(p Path, target int) error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	if p[0] != g.Start() {
		return fmt.Errorf("%w: starts at %d, want %d", ErrInvalidPath, p[0], g.Start())
	}
	if p[len(p)-1] != g.Exit() {
		return fmt.Errorf("%w: ends at %d, want %d", ErrInvalidPath, p[len(p)-1], g.Exit())
	}
	if !p.Contains(target) {
		return fmt.Errorf("%w: target %d missing", ErrInvalidPath, target)
	}
	for i := 1; i < len(p); i++ {
		if !g.HasEdge(p[i-1], p[i]) {
			return fmt.Errorf("%w: no edge %d→%d at hop %d", ErrInvalidPath, p[i-1], p[i], i)
		}
	}
	return nil
}
