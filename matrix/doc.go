// SPDX-License-Identifier: MIT
// Package matrix holds the dense weighted adjacency representation and the
// Floyd–Warshall all-pairs shortest-path solver built on it.
//
// What
//
//   - Adjacency: an n×n matrix of edge weights plus a presence mask. An
//     absent cell means "no direct edge"; a present cell may hold any
//     finite weight, zero included.
//   - FromWeightedList: per-node (neighbor, weight) lists → Adjacency.
//     Last write wins for duplicate neighbors; nothing checks symmetry.
//   - FromRows: legacy dense rows where 0 (and +Inf) mean "no edge". A
//     true zero-weight edge cannot be expressed this way; use Set instead.
//   - AllPairs: O(n³) relaxation producing Dist and Parent matrices.
//   - ReconstructPath / Paths.Path: walk parent pointers back to the start.
//
// Numeric policy
//
//	Unreachable pairs hold math.Inf(1). Relaxation skips any +Inf operand,
//	so infinity never takes part in arithmetic and nothing overflows.
//	NaN and -Inf weights are rejected with ErrInvalidWeight.
//
// Determinism
//
//	Loop order is fixed (k → i → j) and relaxation is strict (<), so the
//	same Adjacency always yields identical Dist and Parent matrices.
//
// Errors
//
//   - ErrBadShape       non-positive size.
//   - ErrNonSquare      ragged or non-square rows.
//   - ErrOutOfRange     index outside [0, n).
//   - ErrInvalidWeight  NaN or -Inf weight.
package matrix
