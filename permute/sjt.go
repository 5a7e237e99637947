package permute

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// ErrNegativeSize is returned for n < 0.
var ErrNegativeSize = errors.New("permute: size must be non-negative")

const (
	left  = -1
	right = 1
)

// SJT is the generator state: the current permutation and each element's
// direction. The zero value is not usable; call NewSJT.
type SJT struct {
	perm    []int
	dir     []int
	started bool
	done    bool
}

// NewSJT prepares an enumeration of {1..n}.
func NewSJT(n int) (*SJT, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSize, n)
	}
	s := &SJT{
		perm: make([]int, n),
		dir:  make([]int, n),
	}
	for i := range s.perm {
		s.perm[i] = i + 1
		s.dir[i] = left
	}
	return s, nil
}

// Next returns a fresh copy of the next permutation, or false once the
// enumeration is exhausted.
func (s *SJT) Next() ([]int, bool) {
	if s.done {
		return nil, false
	}
	if !s.started {
		s.started = true
		return slices.Clone(s.perm), true
	}

	m := s.largestMobile()
	if m < 0 {
		s.done = true
		return nil, false
	}

	to := m + s.dir[m]
	s.perm[m], s.perm[to] = s.perm[to], s.perm[m]
	s.dir[m], s.dir[to] = s.dir[to], s.dir[m]

	moved := s.perm[to]
	for i, v := range s.perm {
		if v > moved {
			s.dir[i] = -s.dir[i]
		}
	}
	return slices.Clone(s.perm), true
}

// largestMobile returns the position of the largest mobile element, or -1.
func (s *SJT) largestMobile() int {
	best := -1
	n := len(s.perm)
	for i, v := range s.perm {
		j := i + s.dir[i]
		if j < 0 || j >= n || s.perm[j] > v {
			continue
		}
		if best < 0 || v > s.perm[best] {
			best = i
		}
	}
	return best
}

// All yields every permutation of {1..n} in SJT order. Negative n yields
// nothing. Each yielded slice is owned by the caller.
func All(n int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		s, err := NewSJT(n)
		if err != nil {
			return
		}
		for p, ok := s.Next(); ok; p, ok = s.Next() {
			if !yield(p) {
				return
			}
		}
	}
}
