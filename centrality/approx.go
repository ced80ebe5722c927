// SPDX-License-Identifier: MIT

package centrality

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/lvcurrent/core"
	"github.com/katalvlaran/lvcurrent/solver"
)

// RequiredSamples returns k = ⌈(c*/ε)² · ln n⌉ with c* = n(n−1)/((n−1)(n−2)).
// The value depends only on n and epsilon and saturates at math.MaxInt.
//
// Errors: ErrTooFewNodes if n < 3, ErrOptionViolation if epsilon is not a
// positive finite number.
func RequiredSamples(n int, epsilon float64) (int, error) {
	if n < 3 {
		return 0, fmt.Errorf("%w: n=%d", ErrTooFewNodes, n)
	}
	if !(epsilon > 0) || math.IsInf(epsilon, 0) {
		return 0, fmt.Errorf("%w: epsilon must be a positive finite number (%g)", ErrOptionViolation, epsilon)
	}
	cstar := cStar(n)
	k := math.Ceil(math.Pow(cstar/epsilon, 2) * math.Log(float64(n)))
	if k >= math.MaxInt {
		return math.MaxInt, nil
	}

	return int(k), nil
}

func cStar(n int) float64 {
	nf := float64(n)

	return nf * (nf - 1) / ((nf - 1) * (nf - 2))
}

// ApproximateCurrentFlowBetweenness estimates vertex current-flow
// betweenness by sampling source/target pairs.
//
// For each of k pairs (s, t) drawn uniformly without replacement, a unit
// current is injected at s and extracted at t; every other vertex v gains
// Σ w(v,x)·|p[v] − p[x]| · c*/(2k) over its neighbors x.
//
// Defaults: normalized, unit conductances, ε = 0.5, kmax = 10000, Full
// solver, fixed seed.
//
// Errors (in order): ErrGraphNil, ErrOptionViolation, ErrDirected,
// ErrEmptyGraph, ErrNotConnected, ErrTooFewNodes, ErrSampleBudget; then
// solver errors wrapped with %w.
func ApproximateCurrentFlowBetweenness(g *core.Graph, opts ...Option) (scores map[string]float64, err error) {
	cfg := newConfig(opts...)
	c := startCall(g, cfg, "ApproximateCurrentFlowBetweenness", solver.Full)
	defer func() { c.finish(err) }()

	if err = validate(g, cfg); err != nil {
		return nil, err
	}
	n := g.VertexCount()
	k, err := RequiredSamples(n, cfg.epsilon)
	if err != nil {
		return nil, err
	}
	if k > cfg.kmax {
		return nil, fmt.Errorf("%w: k=%d > kmax=%d; increase kmax or epsilon", ErrSampleBudget, k, cfg.kmax)
	}
	cfg.logger.Debug("centrality: sampling",
		slog.Int("samples", k),
		slog.Int("kmax", cfg.kmax),
		slog.Float64("epsilon", cfg.epsilon),
	)

	sys, err := c.assemble(g)
	if err != nil {
		return nil, err
	}

	rng := cfg.random()
	scale := cStar(n) / (2 * float64(k))
	acc := make([]float64, n)
	b := make([]float64, n)
	for range k {
		s := rng.IntN(n)
		t := rng.IntN(n - 1)
		if t >= s {
			t++
		}
		clear(b)
		b[s], b[t] = 1, -1
		p, err := sys.inv.Solve(b)
		if err != nil {
			return nil, fmt.Errorf("sample (%d,%d): %w", s, t, err)
		}
		c.solves++
		for v := 0; v < n; v++ {
			if v == s || v == t {
				continue
			}
			cols, vals := sys.l.Row(v)
			for j, x := range cols {
				if x == v {
					continue
				}
				acc[v] += -vals[j] * math.Abs(p[v]-p[x]) * scale
			}
		}
	}

	factor := 1.0
	if !cfg.normalized {
		factor = divisor(n, true) / 2
	}
	scores = make(map[string]float64, n)
	for v, id := range sys.ord.Perm {
		scores[id] = acc[v] * factor
	}

	return scores, nil
}
