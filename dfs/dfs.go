package dfs

import (
	"fmt"

	"github.com/katalvlaran/wayfinder/graph"
)

// frame is one entry of the explicit DFS stack: a node and the position
// of the next neighbor to try.
type frame struct {
	id   int
	next int
}

// Path returns a start-inclusive, exit-inclusive path through target, or
// an empty path if either leg fails.
func Path(g *graph.Graph, target int) (graph.Path, error) {
	if err := graph.CheckTarget(g, target); err != nil {
		return nil, fmt.Errorf("dfs: %w", err)
	}
	first := leg(g, g.Start(), target)
	if first == nil {
		return nil, nil
	}
	second := leg(g, target, g.Exit())
	return graph.Join(first, second), nil
}

// Leg returns the first from → to path found depth-first, both endpoints
// inclusive, or an empty path.
func Leg(g *graph.Graph, from, to int) (graph.Path, error) {
	if err := graph.CheckNode(g, from); err != nil {
		return nil, fmt.Errorf("dfs: from: %w", err)
	}
	if err := graph.CheckNode(g, to); err != nil {
		return nil, fmt.Errorf("dfs: to: %w", err)
	}
	return leg(g, from, to), nil
}

func leg(g *graph.Graph, from, to int) graph.Path {
	visited := make([]bool, g.Len())
	visited[from] = true
	stack := []frame{{id: from}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.id == to {
			out := make(graph.Path, len(stack))
			for i, f := range stack {
				out[i] = f.id
			}
			return out
		}

		adj := g.Adjacent(top.id)
		pushed := false
		for top.next < len(adj) {
			nb := adj[top.next]
			top.next++
			if !visited[nb] {
				visited[nb] = true
				stack = append(stack, frame{id: nb})
				pushed = true
				break
			}
		}
		if !pushed {
			// dead end: backtrack
			stack = stack[:len(stack)-1]
		}
	}
	return nil
}
