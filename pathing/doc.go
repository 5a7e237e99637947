// Package pathing composes the search engines into the set of paths a
// host displays for one graph.
//
// A Planner owns an ordered collection of Scenarios (graph + target +
// optional host-supplied test path). Plan(i) runs every engine on
// scenario i and returns the entries in a fixed order:
//
//	test (if supplied), random, dfs, bfs, dijkstra
//
// Each entry carries its path, hop count and Euclidean weight. The plan
// also reports the Floyd–Warshall optimum through the target so a host can
// score any path against it.
//
// The Planner never mutates its graphs. Its only shared state is the random
// source, guarded by a mutex, so Plan may be called concurrently.
package pathing
