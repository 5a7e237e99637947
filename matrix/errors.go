// SPDX-License-Identifier: MIT

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested size is not positive.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNonSquare signals rows of unequal length or a row count that
	// differs from the column count.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrOutOfRange indicates a row or column index outside [0, n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidWeight indicates a NaN or -Inf edge weight.
	ErrInvalidWeight = errors.New("matrix: invalid edge weight")
)
