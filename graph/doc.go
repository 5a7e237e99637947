// Package graph defines the index-addressed node graph shared by every
// search engine in wayfinder.
//
// What
//
//   - A Graph is an ordered sequence of n ≥ 2 nodes. Node i carries a 2D
//     position (orb.Point) and a set of outgoing neighbor indices.
//   - Node 0 is always the start, node n-1 is always the exit. A target
//     index is supplied per call and only has to lie in [0, n).
//   - Edge weights are never stored: Weight(u, v) is the Euclidean distance
//     between the two node positions, computed on demand.
//
// Path convention
//
//	Every engine returns a Path that includes both endpoints:
//
//	    [0, ..., target, ..., n-1]
//
//	An empty Path means "no path found"; it is an expected outcome and is
//	never reported as an error. Malformed input (too few nodes, a target or
//	neighbor out of range) is reported through the sentinel errors below.
//
// Immutability
//
//	New copies its input. No exported method mutates a Graph, so a single
//	*Graph may be searched from many goroutines at once.
//
// Errors
//
//   - ErrNilGraph            the graph pointer is nil.
//   - ErrTooFewNodes         fewer than two nodes.
//   - ErrNeighborOutOfRange  a neighbor index is outside [0, n).
//   - ErrTargetOutOfRange    a target index is outside [0, n).
//   - ErrNodeOutOfRange      a leg endpoint is outside [0, n).
//   - ErrInvalidPath         VerifyPath rejected a path.
package graph
