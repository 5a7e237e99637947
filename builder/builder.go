// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/wayfinder/graph"
)

const (
	minNodes      = 2
	minCycleNodes = 3
)

// Undirected builds a graph from explicit positions and an undirected edge
// list; every pair {u, v} becomes u→v and v→u.
func Undirected(pos []orb.Point, edges [][2]int) (*graph.Graph, error) {
	nodes := make([]graph.Node, len(pos))
	for i, p := range pos {
		nodes[i].Pos = p
	}
	for _, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= len(pos) || v < 0 || v >= len(pos) {
			return nil, fmt.Errorf("Undirected: edge %v with %d nodes: %w", e, len(pos), ErrEdgeOutOfRange)
		}
		nodes[u].Neighbors = append(nodes[u].Neighbors, v)
		nodes[v].Neighbors = append(nodes[v].Neighbors, u)
	}
	return graph.New(nodes)
}

// Line builds the path graph 0─1─…─(n-1) with unit spacing on the x axis.
func Line(n int, opts ...Option) (*graph.Graph, error) {
	if n < minNodes {
		return nil, fmt.Errorf("Line: n=%d < min=%d: %w", n, minNodes, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)
	pos := make([]orb.Point, n)
	edges := make([][2]int, 0, n-1)
	for i := 0; i < n; i++ {
		pos[i] = orb.Point{float64(i) * cfg.scale, 0}
		if i > 0 {
			edges = append(edges, [2]int{i - 1, i})
		}
	}
	return Undirected(pos, edges)
}

// Cycle builds C_n with nodes evenly spaced on a circle of radius scale.
func Cycle(n int, opts ...Option) (*graph.Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)
	pos := circle(n, cfg.scale)
	edges := make([][2]int, n)
	for i := 0; i < n; i++ {
		edges[i] = [2]int{i, (i + 1) % n}
	}
	return Undirected(pos, edges)
}

// Grid builds a rows×cols orthogonal grid. Node r*cols+c sits at (c, r),
// so node 0 is the bottom-left corner and the exit the top-right one.
func Grid(rows, cols int, opts ...Option) (*graph.Graph, error) {
	if rows < 1 || cols < 1 || rows*cols < minNodes {
		return nil, fmt.Errorf("Grid: rows=%d, cols=%d: %w", rows, cols, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)
	pos := make([]orb.Point, 0, rows*cols)
	var edges [][2]int
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := r*cols + c
			pos = append(pos, orb.Point{float64(c) * cfg.scale, float64(r) * cfg.scale})
			if c+1 < cols {
				edges = append(edges, [2]int{id, id + 1})
			}
			if r+1 < rows {
				edges = append(edges, [2]int{id, id + cols})
			}
		}
	}
	return Undirected(pos, edges)
}

// Complete builds K_n with nodes on a circle.
func Complete(n int, opts ...Option) (*graph.Graph, error) {
	if n < minNodes {
		return nil, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minNodes, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}
	return Undirected(circle(n, cfg.scale), edges)
}

// RandomSparse builds G(n,p): each unordered pair is connected with
// probability p. Positions are uniform in [0,scale)². The result may be
// disconnected.
func RandomSparse(n int, p float64, opts ...Option) (*graph.Graph, error) {
	if n < minNodes {
		return nil, fmt.Errorf("RandomSparse: n=%d < min=%d: %w", n, minNodes, ErrTooFewVertices)
	}
	if p < 0 || p > 1 || math.IsNaN(p) {
		return nil, fmt.Errorf("RandomSparse: p=%v: %w", p, ErrInvalidProbability)
	}
	cfg := newConfig(opts...)
	pos := make([]orb.Point, n)
	for i := range pos {
		pos[i] = orb.Point{cfg.rng.Float64() * cfg.scale, cfg.rng.Float64() * cfg.scale}
	}
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if cfg.rng.Float64() < p {
				edges = append(edges, [2]int{i, j})
			}
		}
	}
	return Undirected(pos, edges)
}

func circle(n int, r float64) []orb.Point {
	pos := make([]orb.Point, n)
	for i := range pos {
		th := 2 * math.Pi * float64(i) / float64(n)
		pos[i] = orb.Point{r * math.Cos(th), r * math.Sin(th)}
	}
	return pos
}
