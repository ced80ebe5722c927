// SPDX-License-Identifier: MIT

package community

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvcurrent/solver"
)

// Option configures a partition run.
type Option func(*config)

type config struct {
	ctx      context.Context
	logger   *slog.Logger
	weighted bool
	kind     solver.Kind
	kindSet  bool
	err      error
}

func newConfig(opts ...Option) config {
	c := config{ctx: context.Background(), logger: slog.Default()}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithWeighted reads edge weights: distances for shortest paths,
// conductances for current flow.
func WithWeighted() Option {
	return func(c *config) { c.weighted = true }
}

// WithSolver selects the inverse Laplacian used by current-flow scoring.
func WithSolver(kind solver.Kind) Option {
	return func(c *config) {
		if !kind.Valid() {
			c.err = fmt.Errorf("%w: unknown solver %d", ErrOptionViolation, int(kind))
			return
		}
		c.kind, c.kindSet = kind, true
	}
}

// WithContext parents the trace span of the run.
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
