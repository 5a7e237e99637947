// Package dfs finds a start→target→exit path by depth-first search.
//
// Path(g, target) runs two legs, 0→target then target→exit, each returning
// the first path depth-first exploration discovers. That path is not
// necessarily the shortest. The legs are joined at the target.
//
// The search uses an explicit stack, not recursion, so deep graphs cannot
// exhaust the goroutine stack. Exploration order matches the recursive
// formulation: neighbors in ascending index order, each node expanded at
// most once per leg. Visited sets are per leg, so the second leg may pass
// through nodes the first leg used.
//
// Complexity (per leg): Time O(V + E), Memory O(V).
//
// Errors:
//
//   - graph.ErrNilGraph, graph.ErrTargetOutOfRange from Path.
//   - graph.ErrNilGraph, graph.ErrNodeOutOfRange from Leg.
//
// An unreachable goal yields an empty graph.Path and a nil error.
package dfs
