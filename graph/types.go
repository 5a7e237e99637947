package graph

import (
	"errors"

	"github.com/paulmach/orb"
)

// Sentinel errors for graph construction and validation.
var (
	// ErrNilGraph is returned when a nil *Graph is passed to an operation.
	ErrNilGraph = errors.New("graph: graph is nil")

	// ErrTooFewNodes indicates a graph with fewer than two nodes.
	ErrTooFewNodes = errors.New("graph: at least two nodes required")

	// ErrNeighborOutOfRange indicates an adjacency entry outside [0, n).
	ErrNeighborOutOfRange = errors.New("graph: neighbor index out of range")

	// ErrTargetOutOfRange indicates a target index outside [0, n).
	ErrTargetOutOfRange = errors.New("graph: target index out of range")

	// ErrNodeOutOfRange indicates a leg endpoint outside [0, n).
	ErrNodeOutOfRange = errors.New("graph: node index out of range")

	// ErrInvalidPath is returned by VerifyPath for a path that breaks the
	// start/target/exit/adjacency contract.
	ErrInvalidPath = errors.New("graph: invalid path")
)

// Node is one input record: a position and its outgoing neighbors.
type Node struct {
	// Pos is the node's 2D coordinate used for Euclidean edge weights.
	Pos orb.Point

	// Neighbors lists outgoing adjacency. Duplicates and self-loops are
	// dropped by New.
	Neighbors []int
}

// WeightedEdge is one (neighbor, weight) pair of a weighted adjacency list.
type WeightedEdge struct {
	To     int
	Weight float64
}

// Path is an ordered sequence of node indices. A nil or zero-length Path
// means no path was found.
type Path []int

// Graph is an immutable index-addressed graph.
type Graph struct {
	pos  []orb.Point
	adj  [][]int            // sorted, deduplicated neighbors
	sets []map[int]struct{} // membership for O(1) HasEdge
}
