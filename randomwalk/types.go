package randomwalk

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/wayfinder/graph"
)

// DefaultMaxRetries is the number of attempts made before giving up.
const DefaultMaxRetries = 20

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("randomwalk: invalid option supplied")

// Option configures a walk.
type Option func(*Options)

// Options holds walk parameters.
type Options struct {
	// MaxRetries bounds the number of attempts. Must be ≥ 1.
	MaxRetries int

	// Rand is the random source. nil selects the default seed.
	Rand *rand.Rand

	err error
}

// DefaultOptions returns DefaultMaxRetries attempts and no explicit source.
func DefaultOptions() Options {
	return Options{MaxRetries: DefaultMaxRetries}
}

// WithMaxRetries sets the attempt bound; n < 1 is recorded as
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

// WithRand injects a random source. nil is ignored.
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
		o.Rand = rngFromSeed(seed)
	}
}

// Result is the outcome of Walk.
type Result struct {
	// Path is empty when every attempt failed.
	Path graph.Path

	// Attempts is the number of attempts made, successful one included.
	Attempts int
}
