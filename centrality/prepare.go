// SPDX-License-Identifier: MIT

package centrality

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvcurrent/bfs"
	"github.com/katalvlaran/lvcurrent/core"
	"github.com/katalvlaran/lvcurrent/laplacian"
	"github.com/katalvlaran/lvcurrent/ordering"
	"github.com/katalvlaran/lvcurrent/solver"
)

// call carries the per-invocation instrumentation state.
type call struct {
	name   string
	cfg    config
	kind   solver.Kind
	ctx    context.Context
	span   trace.Span
	start  time.Time
	solves int
}

func startCall(g *core.Graph, cfg config, name string, def solver.Kind) *call {
	var nodes, edges int
	if g != nil {
		nodes, edges = g.VertexCount(), g.EdgeCount()
	}
	c := &call{name: name, cfg: cfg, kind: cfg.solverOr(def), start: time.Now()}
	c.ctx, c.span = startCallSpan(cfg.ctx, name, nodes, edges)
	cfg.logger.Debug("centrality: start",
		slog.String("algorithm", name),
		slog.Int("nodes", nodes),
		slog.Int("edges", edges),
		slog.String("solver", c.kind.String()),
		slog.Bool("normalized", cfg.normalized),
	)

	return c
}

func (c *call) finish(err error) {
	d := time.Since(c.start)
	endCallSpan(c.span, c.kind.String(), c.solves, err)
	recordCallMetrics(c.ctx, c.name, c.kind.String(), d, c.solves, err == nil)
	if err != nil {
		c.cfg.logger.Debug("centrality: failed",
			slog.String("algorithm", c.name),
			slog.String("error", err.Error()),
		)
		return
	}
	c.cfg.logger.Debug("centrality: done",
		slog.String("algorithm", c.name),
		slog.Int("solves", c.solves),
		slog.Duration("duration", d),
	)
}

// validate applies the preconditions shared by every algorithm, cheapest first:
// nil graph, options, directedness, emptiness, connectivity.
func validate(g *core.Graph, cfg config) error {
	if g == nil {
		return ErrGraphNil
	}
	if cfg.err != nil {
		return cfg.err
	}
	if g.Directed() || g.HasDirectedEdges() {
		return ErrDirected
	}
	if g.VertexCount() == 0 {
		return ErrEmptyGraph
	}
	ok, err := bfs.IsConnected(g)
	if err != nil {
		return fmt.Errorf("connectivity: %w", err)
	}
	if !ok {
		return ErrNotConnected
	}

	return nil
}

// system is a graph renumbered by reverse Cuthill–McKee together with its
// Laplacian and inverse.
type system struct {
	ord ordering.Ordering
	l   *laplacian.Laplacian
	inv solver.InverseLaplacian
}

func (c *call) assemble(g *core.Graph) (*system, error) {
	ord, err := ordering.ReverseCuthillMcKee(g)
	if err != nil {
		return nil, fmt.Errorf("ordering: %w", err)
	}
	l, err := laplacian.Build(g, ord, laplacian.WithWeights(c.cfg.weighted))
	if err != nil {
		return nil, err
	}
	inv, err := solver.New(c.kind, l)
	if err != nil {
		return nil, err
	}
	c.cfg.logger.Debug("centrality: system ready",
		slog.String("algorithm", c.name),
		slog.Int("bandwidth", l.Bandwidth()),
		slog.Int("width", inv.Width()),
	)

	return &system{ord: ord, l: l, inv: inv}, nil
}

// divisor is (n−1)(n−2) for normalized scores on n ≥ 3 vertices, else 2.
func divisor(n int, normalized bool) float64 {
	if normalized && n >= 3 {
		return float64(n-1) * float64(n-2)
	}

	return 2
}

// ranker assigns each entry of a row its position in descending order.
// Equal entries keep ascending index order.
type ranker struct {
	idx, pos []int
}

func newRanker(n int) *ranker {
	return &ranker{idx: make([]int, n), pos: make([]int, n)}
}

func (r *ranker) rank(row []float64) []int {
	for i := range r.idx {
		r.idx[i] = i
	}
	sort.SliceStable(r.idx, func(a, b int) bool { return row[r.idx[a]] > row[r.idx[b]] })
	for p, i := range r.idx {
		r.pos[i] = p
	}

	return r.pos
}
