// SPDX-License-Identifier: MIT

package centrality

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/lvcurrent/solver"
)

const (
	// DefaultEpsilon is the default absolute error of the sampling estimator.
	DefaultEpsilon = 0.5
	// DefaultKMax is the default sample budget of the sampling estimator.
	DefaultKMax = 10000
	// DefaultSeed seeds the sampling estimator when neither WithRand nor WithSeed is given.
	DefaultSeed uint64 = 0x6c7663757272656e

	pcgStream uint64 = 0x9E3779B97F4A7C15
)

// Option configures a centrality computation.
type Option func(*config)

type config struct {
	ctx        context.Context
	logger     *slog.Logger
	normalized bool
	weighted   bool
	kind       solver.Kind
	kindSet    bool
	epsilon    float64
	kmax       int
	rng        *rand.Rand

	err error
}

func newConfig(opts ...Option) config {
	c := config{
		ctx:        context.Background(),
		logger:     slog.Default(),
		normalized: true,
		epsilon:    DefaultEpsilon,
		kmax:       DefaultKMax,
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// solverOr returns the configured solver, or def when none was chosen.
func (c config) solverOr(def solver.Kind) solver.Kind {
	if c.kindSet {
		return c.kind
	}

	return def
}

func (c config) random() *rand.Rand {
	if c.rng != nil {
		return c.rng
	}

	return rand.New(rand.NewPCG(DefaultSeed, DefaultSeed^pcgStream))
}

// WithNormalized selects normalized (true, default) or unnormalized scores.
func WithNormalized(normalized bool) Option {
	return func(c *config) { c.normalized = normalized }
}

// WithWeighted uses edge weights as conductances. Without it every edge conducts 1.
func WithWeighted() Option {
	return func(c *config) { c.weighted = true }
}

// WithSolver selects the inverse Laplacian strategy.
func WithSolver(kind solver.Kind) Option {
	return func(c *config) {
		if !kind.Valid() {
			c.err = fmt.Errorf("%w: %w", ErrOptionViolation, fmt.Errorf("%w: %d", solver.ErrUnknownSolver, int(kind)))
			return
		}
		c.kind, c.kindSet = kind, true
	}
}

// WithEpsilon sets the absolute error of the sampling estimator (ε > 0).
func WithEpsilon(eps float64) Option {
	return func(c *config) {
		if !(eps > 0) || math.IsInf(eps, 0) {
			c.err = fmt.Errorf("%w: epsilon must be a positive finite number (%g)", ErrOptionViolation, eps)
			return
		}
		c.epsilon = eps
	}
}

// WithKMax caps the number of samples of the sampling estimator (kmax > 0).
func WithKMax(kmax int) Option {
	return func(c *config) {
		if kmax <= 0 {
			c.err = fmt.Errorf("%w: kmax must be positive (%d)", ErrOptionViolation, kmax)
			return
		}
		c.kmax = kmax
	}
}

// WithSeed draws samples from a PCG source seeded with seed.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewPCG(seed, seed^pcgStream)) }
}

// WithRand draws samples from r. The generator is advanced by the call.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r == nil {
			c.err = fmt.Errorf("%w: nil random source", ErrOptionViolation)
			return
		}
		c.rng = r
	}
}

// WithContext parents the call's trace span. Computations are not cancelled.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithLogger routes debug logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
