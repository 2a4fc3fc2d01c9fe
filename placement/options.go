// SPDX-License-Identifier: MIT

package placement

import (
	"fmt"
	"log/slog"
	"math/rand"
)

// Defaults for the rejection sampler.
const (
	DefaultAttempts   = 40
	DefaultTolerance  = 0.2
	DefaultCenterPool = 20
)

// Option customizes Place. Constructors panic on meaningless values;
// Place itself never panics.
type Option func(*config)

type config struct {
	rng          *rand.Rand
	attempts     int
	tolerance    float64
	centerPool   int
	strictSpread bool
	logger       *slog.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		attempts:   DefaultAttempts,
		tolerance:  DefaultTolerance,
		centerPool: DefaultCenterPool,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithRand supplies the RNG used for finish sampling and start shuffling.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("placement: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a deterministic RNG from seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithAttempts sets the retry budget. Panics if k < 1.
func WithAttempts(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("placement: WithAttempts(%d)", k))
	}
	return func(c *config) {
		c.attempts = k
	}
}

// WithTolerance sets the balance band as a fraction of the mean distance.
// Panics if tol is negative.
func WithTolerance(tol float64) Option {
	if tol < 0 {
		panic(fmt.Sprintf("placement: WithTolerance(%v)", tol))
	}
	return func(c *config) {
		c.tolerance = tol
	}
}

// WithCenterPool sets how many centre-nearest floors the finish is drawn from.
// Panics if k < 1.
func WithCenterPool(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("placement: WithCenterPool(%d)", k))
	}
	return func(c *config) {
		c.centerPool = k
	}
}

// WithStrictSpread tightens the balance test: the largest and smallest start
// distances may differ by at most tolerance × mean, instead of each distance
// lying within tolerance × mean of the mean.
func WithStrictSpread() Option {
	return func(c *config) {
		c.strictSpread = true
	}
}

// WithLogger routes attempt-level debug records to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("placement: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
