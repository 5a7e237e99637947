// Package bfs finds a start→target→exit path by breadth-first search.
//
// What
//
//   - Path(g, target) runs two independent legs, 0→target and
//     target→exit, and joins them at the target.
//   - Each leg explores neighbors in FIFO order, so the first time the goal
//     is reached the leg has the minimum possible edge count.
//   - Leg(g, from, to) exposes a single leg.
//
// Why
//
//	BFS gives the fewest-hops route. For the same graph and target its path
//	is never longer (in edges) than the one dfs.Path returns.
//
// Determinism
//
//	Neighbors are visited in ascending index order (graph.New sorts them),
//	so the same graph always yields the same path.
//
// Complexity (per leg)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue, parent links and visited set.
//
// Errors
//
//   - graph.ErrNilGraph, graph.ErrTargetOutOfRange from Path.
//   - graph.ErrNilGraph, graph.ErrNodeOutOfRange from Leg.
//
// An unreachable goal is not an error: the result is an empty graph.Path.
package bfs
