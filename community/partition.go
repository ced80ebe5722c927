// SPDX-License-Identifier: MIT

package community

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/lvcurrent/bfs"
	"github.com/katalvlaran/lvcurrent/centrality"
	"github.com/katalvlaran/lvcurrent/core"
)

// tieTolerance is the relative distance from the maximum score within which
// edges count as tied.
const tieTolerance = 1e-9

// scorer rates the edges of the working graph given its components.
type scorer func(work *core.Graph, comps [][]string, cfg config) (map[centrality.EdgeKey]float64, error)

// EdgeBetweennessPartition splits g into k communities by removing the edge
// of highest shortest-path betweenness until k components remain.
// With WithWeighted, edge weights are distances.
//
// Errors (in order): ErrGraphNil, ErrOptionViolation, ErrDirected,
// ErrInvalidPartitionCount, ErrInvalidWeight.
func EdgeBetweennessPartition(g *core.Graph, k int, opts ...Option) ([][]string, error) {
	return run(g, k, "EdgeBetweennessPartition", shortestPathScores, opts)
}

// EdgeCurrentFlowBetweennessPartition splits g into k communities by removing
// the edge of highest current-flow betweenness until k components remain.
// With WithWeighted, edge weights are conductances.
//
// Errors: as EdgeBetweennessPartition, plus centrality and solver errors
// wrapped with %w.
func EdgeCurrentFlowBetweennessPartition(g *core.Graph, k int, opts ...Option) ([][]string, error) {
	return run(g, k, "EdgeCurrentFlowBetweennessPartition", currentFlowScores, opts)
}

func run(g *core.Graph, k int, method string, score scorer, opts []Option) (comps [][]string, err error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := newConfig(opts...)
	start := time.Now()
	ctx, span := startPartitionSpan(cfg.ctx, method, g.VertexCount(), g.EdgeCount(), k)
	cfg.ctx = ctx
	removed := 0
	defer func() {
		endPartitionSpan(span, removed, len(comps), err)
		recordPartitionMetrics(ctx, method, time.Since(start), removed, err == nil)
	}()

	if cfg.err != nil {
		return nil, cfg.err
	}
	if g.Directed() || g.HasDirectedEdges() {
		return nil, ErrDirected
	}
	n := g.VertexCount()
	if k < 1 || k > n {
		return nil, fmt.Errorf("%w: k=%d, |V|=%d", ErrInvalidPartitionCount, k, n)
	}
	if k == 1 {
		return [][]string{g.Vertices()}, nil
	}
	if k == n {
		out := make([][]string, 0, n)
		for _, id := range g.Vertices() {
			out = append(out, []string{id})
		}

		return out, nil
	}

	work := g.Clone()
	for {
		comps, err = bfs.ConnectedComponents(work)
		if err != nil {
			return nil, fmt.Errorf("components: %w", err)
		}
		if len(comps) >= k {
			cfg.logger.Debug("community: done",
				slog.String("method", method),
				slog.Int("communities", len(comps)),
				slog.Int("edges_removed", removed),
			)

			return comps, nil
		}
		scores, err := score(work, comps, cfg)
		if err != nil {
			return nil, err
		}
		e, ok := pickMax(scores)
		if !ok {
			return nil, fmt.Errorf("%w: no edge left with %d components", ErrInvalidPartitionCount, len(comps))
		}
		if _, err := work.RemoveEdgesBetween(e.U, e.V); err != nil {
			return nil, fmt.Errorf("remove %s: %w", e, err)
		}
		removed++
		cfg.logger.Debug("community: edge removed",
			slog.String("method", method),
			slog.String("edge", e.String()),
			slog.Float64("score", scores[e]),
			slog.Int("components", len(comps)),
		)
	}
}

// pickMax returns the lexicographically smallest edge among those tied for
// the highest score.
func pickMax(scores map[centrality.EdgeKey]float64) (centrality.EdgeKey, bool) {
	if len(scores) == 0 {
		return centrality.EdgeKey{}, false
	}
	best := math.Inf(-1)
	for _, s := range scores {
		best = max(best, s)
	}
	floor := best - tieTolerance*max(1, math.Abs(best))

	var pick centrality.EdgeKey
	found := false
	for e, s := range scores {
		if s < floor {
			continue
		}
		if !found || e.U < pick.U || (e.U == pick.U && e.V < pick.V) {
			pick, found = e, true
		}
	}

	return pick, found
}

func shortestPathScores(work *core.Graph, _ [][]string, cfg config) (map[centrality.EdgeKey]float64, error) {
	m, err := newMirror(work, cfg.weighted && work.Weighted())
	if err != nil {
		return nil, err
	}

	return m.edgeBetweenness(), nil
}

// currentFlowScores evaluates unnormalized current-flow edge betweenness on
// every component with at least one edge.
func currentFlowScores(work *core.Graph, comps [][]string, cfg config) (map[centrality.EdgeKey]float64, error) {
	opts := []centrality.Option{
		centrality.WithNormalized(false),
		centrality.WithContext(cfg.ctx),
		centrality.WithLogger(cfg.logger),
	}
	if cfg.weighted {
		opts = append(opts, centrality.WithWeighted())
	}
	if cfg.kindSet {
		opts = append(opts, centrality.WithSolver(cfg.kind))
	}

	out := make(map[centrality.EdgeKey]float64)
	for _, comp := range comps {
		if len(comp) < 2 {
			continue
		}
		keep := make(map[string]bool, len(comp))
		for _, id := range comp {
			keep[id] = true
		}
		scores, err := centrality.EdgeCurrentFlowBetweenness(core.InducedSubgraph(work, keep), opts...)
		if err != nil {
			return nil, fmt.Errorf("component %s: %w", comp[0], err)
		}
		for e, s := range scores {
			out[e] = s
		}
	}

	return out, nil
}
