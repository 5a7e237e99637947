// Package dijkstra finds the minimum-weight start→target→exit path on a
// positioned graph.
//
// Overview:
//
//   - The weight of edge u→v is the Euclidean distance between the two node
//     positions. It is recomputed at every relaxation; nothing is cached.
//   - Path(g, target) runs two independent legs (0→target, target→exit),
//     each to completion, and joins them at the target. If either leg
//     cannot reach its goal, the result is an empty path.
//   - Leg(g, from, to) exposes one leg together with its total weight.
//
// Implementation:
//
//   - Min-heap keyed by accumulated weight, "lazy decrease-key": a node may
//     be pushed several times; the first pop finalizes it and later stale
//     entries are skipped.
//   - Relaxation is strict (<), so among equal-weight routes the one found
//     first wins. Equal keys in the heap are ordered by insertion sequence.
//     Callers should rely only on total weight, never on which of several
//     equally short routes is returned.
//
// Complexity (per leg):
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (heap holds up to E entries).
//
// Errors:
//
//   - graph.ErrNilGraph, graph.ErrTargetOutOfRange from Path.
//   - graph.ErrNilGraph, graph.ErrNodeOutOfRange from Leg.
package dijkstra
