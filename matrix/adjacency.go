// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wayfinder/graph"
)

// Adjacency is a dense n×n weighted adjacency matrix with an explicit
// presence mask. Storage is row-major.
type Adjacency struct {
	n       int
	weights []float64
	present []bool
}

// New returns an n×n Adjacency with no edges.
func New(n int) (*Adjacency, error) {
	if n <= 0 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrBadShape)
	}
	return &Adjacency{
		n:       n,
		weights: make([]float64, n*n),
		present: make([]bool, n*n),
	}, nil
}

// Size returns n.
func (a *Adjacency) Size() int { return a.n }

func (a *Adjacency) index(i, j int) (int, error) {
	if i < 0 || i >= a.n || j < 0 || j >= a.n {
		return 0, fmt.Errorf("(%d,%d) in %dx%d: %w", i, j, a.n, a.n, ErrOutOfRange)
	}
	return i*a.n + j, nil
}

// Set records an edge i→j with weight w. Zero is a valid weight here.
// +Inf removes the edge; NaN and -Inf are rejected.
func (a *Adjacency) Set(i, j int, w float64) error {
	idx, err := a.index(i, j)
	if err != nil {
		return fmt.Errorf("Set: %w", err)
	}
	switch {
	case math.IsNaN(w), math.IsInf(w, -1):
		return fmt.Errorf("Set(%d,%d,%v): %w", i, j, w, ErrInvalidWeight)
	case math.IsInf(w, 1):
		a.weights[idx], a.present[idx] = 0, false
	default:
		a.weights[idx], a.present[idx] = w, true
	}
	return nil
}

// Clear removes the edge i→j if present.
func (a *Adjacency) Clear(i, j int) error {
	idx, err := a.index(i, j)
	if err != nil {
		return fmt.Errorf("Clear: %w", err)
	}
	a.weights[idx], a.present[idx] = 0, false
	return nil
}

// At returns the weight of i→j and whether the edge exists.
func (a *Adjacency) At(i, j int) (float64, bool, error) {
	idx, err := a.index(i, j)
	if err != nil {
		return 0, false, fmt.Errorf("At: %w", err)
	}
	return a.weights[idx], a.present[idx], nil
}

// Rows renders the matrix in the legacy dense form: absent cells read 0.
func (a *Adjacency) Rows() [][]float64 {
	out := make([][]float64, a.n)
	for i := range out {
		out[i] = make([]float64, a.n)
		copy(out[i], a.weights[i*a.n:(i+1)*a.n])
	}
	return out
}

// FromWeightedList converts per-node (neighbor, weight) lists into an
// Adjacency of size len(list). A neighbor listed twice keeps its last
// weight. Diagonal entries are stored but ignored by AllPairs.
func FromWeightedList(list [][]graph.WeightedEdge) (*Adjacency, error) {
	a, err := New(len(list))
	if err != nil {
		return nil, fmt.Errorf("FromWeightedList: %w", err)
	}
	for i, edges := range list {
		for _, e := range edges {
			if err = a.Set(i, e.To, e.Weight); err != nil {
				return nil, fmt.Errorf("FromWeightedList: node %d: %w", i, err)
			}
		}
	}
	return a, nil
}

// FromRows reads a dense square matrix in which 0 and +Inf both mean
// "no edge". Any other finite value is an edge weight.
func FromRows(rows [][]float64) (*Adjacency, error) {
	a, err := New(len(rows))
	if err != nil {
		return nil, fmt.Errorf("FromRows: %w", err)
	}
	for i, row := range rows {
		if len(row) != a.n {
			return nil, fmt.Errorf("FromRows: row %d has %d cols, want %d: %w", i, len(row), a.n, ErrNonSquare)
		}
		for j, w := range row {
			if w == 0 {
				continue
			}
			if err = a.Set(i, j, w); err != nil {
				return nil, fmt.Errorf("FromRows: %w", err)
			}
		}
	}
	return a, nil
}
