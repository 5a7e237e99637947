// Package wayfinder is a small route-finding toolkit for index-addressed
// 2D graphs: node 0 is the start, node n-1 the exit, and every route must
// pass through a chosen target.
//
// Everything is organized in flat subpackages, one concern each:
//
//	graph/       — Graph, Node, Path, validation, Euclidean weights, Locator
//	builder/     — deterministic generators: line, cycle, grid, complete, sparse
//	gridgraph/   — tile maps (walls/floors) converted into graphs
//	randomwalk/  — randomized simple route with bounded retries
//	dfs/         — explicit-stack depth-first route
//	bfs/         — minimum-hop route
//	dijkstra/    — minimum-weight route (lazy-deletion heap)
//	matrix/      — dense adjacency + Floyd–Warshall all-pairs paths
//	permute/     — Steinhaus–Johnson–Trotter permutations
//	hamilton/    — exhaustive fixed-endpoint Hamiltonian routes
//	pathing/     — runs every engine over a collection of scenarios
//
// Every engine returns a path that includes both endpoints:
//
//	[0, ..., target, ..., n-1]
//
// An empty path means "no route" and is never an error; malformed input is
// reported through sentinel errors matched with errors.Is.
//
// Quick ASCII example:
//
//	    2───3
//	    │   │
//	    0───1
//
// With target 1, BFS yields [0 1 3] and the Floyd–Warshall reference is 2.
//
// The wayfinder command (cmd/wayfinder) loads a YAML graph collection and
// prints plans, all-pairs distances, Hamiltonian routes and nearest nodes.
package wayfinder
