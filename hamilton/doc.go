// Package hamilton exhaustively searches for Hamiltonian start→exit
// routes with fixed endpoints.
//
// Node 0 and node n-1 are pinned as the first and last entries. Every
// ordering of the n-2 interior labels 1..n-2 is generated in
// Steinhaus–Johnson–Trotter order (package permute), and the candidate
//
//	[0, p1, p2, …, p(n-2), n-1]
//
// is accepted when each consecutive pair is an edge of the graph. All
// accepted candidates are returned in generation order.
//
// "Not found" is reported explicitly through Result.Found, never by a
// magic value in the cycle list.
//
// Cost is (n-2)! candidates × O(n) edge checks. Nothing is pruned or
// approximated; use WithMaxInterior to reject oversized inputs up front
// and WithContext to abandon a long enumeration.
//
// Errors:
//
//   - graph.ErrNilGraph     the graph pointer is nil.
//   - ErrTooLarge           n-2 exceeds the WithMaxInterior bound.
//   - ErrOptionViolation    negative WithMaxInterior.
//   - ctx.Err()             the context was cancelled mid-enumeration.
package hamilton
