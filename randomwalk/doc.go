// Package randomwalk builds a start→target→exit path from two randomized
// simple walks.
//
// What
//
//   - Leg one walks from the start (node 0) to the target, leg two from the
//     target to the exit (node n-1). At each step the next node is drawn
//     uniformly from the current node's neighbors that have not been
//     visited yet.
//   - Both legs share one visited set, so leg two can never reuse a node
//     leg one touched.
//   - A leg fails when the current node has no unvisited neighbor before
//     its goal is reached. The whole attempt is then discarded and retried
//     from scratch, up to MaxRetries times (default 20).
//   - After the last failed attempt the result is an empty path. That is
//     the expected "no path" outcome, not an error.
//
// Randomness
//
//	The random source is injected (WithRand / WithSeed) and never read from
//	global state. Without either option a fixed default seed is used, so
//	two bare calls return the same path. *rand.Rand is not goroutine-safe:
//	do not share one source across concurrent walks.
//
// Postcondition
//
//	Every non-empty result is checked with graph.Graph.VerifyPath before it
//	is returned; a violation surfaces as an error wrapping
//	graph.ErrInvalidPath instead of a panic.
//
// Errors
//
//   - graph.ErrNilGraph, graph.ErrTargetOutOfRange for malformed input.
//   - ErrOptionViolation for MaxRetries < 1.
package randomwalk
