// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the
// constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrEdgeOutOfRange indicates an explicit edge endpoint outside the
// position list.
var ErrEdgeOutOfRange = errors.New("builder: edge endpoint out of range")
