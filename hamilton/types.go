package hamilton

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/wayfinder/graph"
)

var (
	// ErrTooLarge is returned when the interior exceeds MaxInterior.
	ErrTooLarge = errors.New("hamilton: too many interior nodes")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("hamilton: invalid option supplied")
)

// checkEvery is how many candidates are tested between context checks.
const checkEvery = 1024

// Option configures Cycles.
type Option func(*Options)

// Options holds enumeration parameters.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// MaxInterior, if > 0, rejects graphs with more than this many
	// interior nodes. 0 means no bound.
	MaxInterior int

	err error
}

// DefaultOptions returns a background context and no size bound.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a context for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxInterior bounds n-2. Negative values are recorded as
// ErrOptionViolation.
func WithMaxInterior(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: MaxInterior cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.MaxInterior = k
	}
}

// Result lists every accepted route.
type Result struct {
	// Cycles holds accepted routes in generation order.
	Cycles []graph.Path

	// Checked is the number of candidates tested.
	Checked int
}

// Found reports whether at least one route was accepted.
func (r *Result) Found() bool { return len(r.Cycles) > 0 }
