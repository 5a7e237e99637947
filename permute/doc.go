// Package permute enumerates permutations of {1..n} in
// Steinhaus–Johnson–Trotter order.
//
// Every element carries a direction (initially left). An element is
// mobile when the neighbor it points at is smaller. Each step swaps the
// largest mobile element one place in its direction, then reverses the
// direction of every element larger than it. Enumeration stops when no
// element is mobile.
//
// Properties:
//
//   - The identity permutation is emitted first.
//   - Consecutive permutations differ by one adjacent transposition.
//   - All n! permutations are emitted exactly once; for n = 0 the single
//     empty permutation is emitted.
//
// For n = 3 the sequence is:
//
//	[1 2 3] [1 3 2] [3 1 2] [3 2 1] [2 3 1] [2 1 3]
//
// An SJT value is a lazy, finite, non-restartable sequence. All(n) wraps it
// as an iter.Seq for range-over-func loops.
package permute
