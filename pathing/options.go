package pathing

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/wayfinder/randomwalk"
)

const defaultSeed int64 = 1

// Option configures a Planner.
type Option func(*Options)

// Options holds planner parameters.
type Options struct {
	// Rand drives the random-walk engine. nil selects the default seed.
	Rand *rand.Rand

	// MaxRetries bounds random-walk attempts per plan.
	MaxRetries int

	err error
}

// DefaultOptions returns randomwalk.DefaultMaxRetries and no explicit source.
func DefaultOptions() Options {
	return Options{MaxRetries: randomwalk.DefaultMaxRetries}
}

// WithRand injects the random source. nil is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed uses a fresh source seeded with seed (0 ⇒ default seed).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		if seed == 0 {
			seed = defaultSeed
		}
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithMaxRetries sets the random-walk attempt bound; n < 1 is recorded as
// ErrOptionViolation.
func WithMaxRetries(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxRetries must be ≥ 1 (got %d)", ErrOptionViolation, n)
			return
		}
		o.MaxRetries = n
	}
}
