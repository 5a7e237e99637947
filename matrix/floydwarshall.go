// SPDX-License-Identifier: MIT
//
// Floyd–Warshall all-pairs shortest paths with predecessor tracking.
//
// Contract:
//   - Dist[i][i] = 0; Dist[i][j] = weight of a present edge, else +Inf.
//   - Parent[i][j] = i for a direct edge, NoParent otherwise, then
//     Parent[i][j] = Parent[k][j] whenever k strictly improves i→j.
//   - Results are freshly allocated; the input Adjacency is never written.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wayfinder/graph"
)

// NoParent marks an undefined predecessor: i == j or j unreachable from i.
const NoParent = -1

// Paths is the output of AllPairs.
type Paths struct {
	// Dist[i][j] is the shortest i→j weight, +Inf if unreachable.
	Dist [][]float64

	// Parent[i][j] is the predecessor of j on the shortest i→j path.
	Parent [][]int
}

// AllPairs runs Floyd–Warshall over a.
//
// Complexity: Time O(n³), Space O(n²).
func AllPairs(a *Adjacency) (*Paths, error) {
	if a == nil {
		return nil, fmt.Errorf("AllPairs: %w", ErrBadShape)
	}
	n := a.n
	inf := math.Inf(1)

	dist := make([][]float64, n)
	parent := make([][]int, n)
	var i, j, k int
	for i = 0; i < n; i++ {
		dist[i] = make([]float64, n)
		parent[i] = make([]int, n)
		base := i * n
		for j = 0; j < n; j++ {
			parent[i][j] = NoParent
			switch {
			case i == j:
				dist[i][j] = 0
			case a.present[base+j]:
				dist[i][j] = a.weights[base+j]
				parent[i][j] = i
			default:
				dist[i][j] = inf
			}
		}
	}

	var ik, kj, cand float64
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			ik = dist[i][k]
			if math.IsInf(ik, 1) {
				continue
			}
			for j = 0; j < n; j++ {
				kj = dist[k][j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < dist[i][j] {
					dist[i][j] = cand
					parent[i][j] = parent[k][j]
				}
			}
		}
	}

	return &Paths{Dist: dist, Parent: parent}, nil
}

// NegativeCycle reports whether any node can reach itself at negative cost.
func (p *Paths) NegativeCycle() bool {
	for i := range p.Dist {
		if p.Dist[i][i] < 0 {
			return true
		}
	}
	return false
}

// Path reconstructs the shortest start→end path, validating both indices.
func (p *Paths) Path(start, end int) (graph.Path, error) {
	n := len(p.Parent)
	if start < 0 || start >= n || end < 0 || end >= n {
		return nil, fmt.Errorf("Path(%d,%d) in %dx%d: %w", start, end, n, n, ErrOutOfRange)
	}
	return ReconstructPath(p.Parent, start, end), nil
}

// ReconstructPath walks parent pointers backward from end until it reaches
// start. It returns:
//   - [start] when start == end,
//   - nil when parent[start][end] is NoParent (no path),
//   - nil when the walk breaks or runs longer than n steps (negative cycle).
//
// Indices are assumed to be in range; use Paths.Path for a checked call.
func ReconstructPath(parent [][]int, start, end int) graph.Path {
	if start == end {
		return graph.Path{start}
	}
	if parent[start][end] == NoParent {
		return nil
	}

	n := len(parent)
	rev := graph.Path{end}
	for cur := end; cur != start; {
		cur = parent[start][cur]
		if cur == NoParent || len(rev) > n {
			return nil
		}
		rev = append(rev, cur)
	}

	for l, r := 0, len(rev)-1; l < r; l, r = l+1, r-1 {
		rev[l], rev[r] = rev[r], rev[l]
	}
	return rev
}
