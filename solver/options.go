// SPDX-License-Identifier: MIT

package solver

import "fmt"

const (
	// DefaultTolerance is the CG stopping threshold on ‖r‖ / ‖b‖.
	DefaultTolerance = 1e-10

	minIterations = 100
	iterPerNode   = 10
)

// Option tunes a solver. Only CG reads the values today.
type Option func(*config)

type config struct {
	tol     float64
	maxIter int // 0 means max(10n, 100)
}

func newConfig(opts ...Option) config {
	c := config{tol: DefaultTolerance}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

func (c config) iterations(n int) int {
	if c.maxIter > 0 {
		return c.maxIter
	}

	return max(iterPerNode*n, minIterations)
}

// WithTolerance sets the CG relative residual tolerance. Panics unless 0 < tol < 1.
func WithTolerance(tol float64) Option {
	if !(tol > 0 && tol < 1) {
		panic(fmt.Sprintf("solver: WithTolerance(%g) out of (0,1)", tol))
	}

	return func(c *config) { c.tol = tol }
}

// WithMaxIterations caps CG iterations. Panics if n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("solver: WithMaxIterations(%d) must be > 0", n))
	}

	return func(c *config) { c.maxIter = n }
}
