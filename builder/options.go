// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// defaultSeed is used when no seed or source is supplied.
const defaultSeed int64 = 1

// Option configures a constructor.
type Option func(*config)

type config struct {
	rng   *rand.Rand
	scale float64
}

func newConfig(opts ...Option) config {
	cfg := config{scale: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}
	return cfg
}

// WithSeed fixes the random source used by stochastic constructors.
// Seed 0 selects the package default.
func WithSeed(seed int64) Option {
	return func(c *config) {
		if seed == 0 {
			seed = defaultSeed
		}
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies an explicit random source. nil is ignored.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithScale multiplies every generated coordinate by s. Non-positive
// values are ignored.
func WithScale(s float64) Option {
	return func(c *config) {
		if s > 0 {
			c.scale = s
		}
	}
}
