// SPDX-License-Identifier: MIT
// Package builder constructs canonical positioned graphs for tests,
// benchmarks, demos and the CLI.
//
// Every constructor returns an undirected *graph.Graph (each edge is
// listed in both directions) whose node positions follow the topology:
//
//	Line(n)            0─1─2─…─(n-1) along the x axis
//	Cycle(n)           n nodes on a circle, i ↔ (i+1)%n
//	Grid(rows, cols)   node r*cols+c at (c, r), 4-neighborhood
//	Complete(n)        every pair connected, nodes on a circle
//	RandomSparse(n,p)  Erdős–Rényi G(n,p), uniform positions in the unit square
//	Undirected(pos, e) explicit positions and an undirected edge list
//
// Determinism: same arguments and options ⇒ identical graphs. RandomSparse
// draws from a seeded source (WithSeed / WithRand), never from time.
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrEdgeOutOfRange,
// plus graph errors surfaced by graph.New.
package builder
