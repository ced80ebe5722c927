// SPDX-License-Identifier: MIT

package centrality

import (
	"github.com/katalvlaran/lvcurrent/core"
	"github.com/katalvlaran/lvcurrent/flowmatrix"
	"github.com/katalvlaran/lvcurrent/solver"
)

// CurrentFlowBetweenness returns the current-flow betweenness of every
// vertex of g, keyed by vertex ID.
//
// Defaults: normalized, unit conductances, LU solver.
//
// Errors (in order): ErrGraphNil, ErrOptionViolation, ErrDirected,
// ErrEmptyGraph, ErrNotConnected; then laplacian.ErrInvalidWeight and
// solver errors wrapped with %w.
func CurrentFlowBetweenness(g *core.Graph, opts ...Option) (scores map[string]float64, err error) {
	cfg := newConfig(opts...)
	c := startCall(g, cfg, "CurrentFlowBetweenness", solver.LU)
	defer func() { c.finish(err) }()

	if err = validate(g, cfg); err != nil {
		return nil, err
	}
	sys, err := c.assemble(g)
	if err != nil {
		return nil, err
	}
	it, err := flowmatrix.NewRowIterator(sys.l, sys.inv)
	if err != nil {
		return nil, err
	}

	n := sys.l.N()
	acc := make([]float64, n)
	rk := newRanker(n)
	for it.Next() {
		row := it.Row()
		pos := rk.rank(row)
		s, t := it.Edge()
		for i, x := range row {
			acc[s] += float64(i-pos[i]) * x
			acc[t] += float64(n-i-1-pos[i]) * x
		}
		c.solves++
	}
	if err = it.Err(); err != nil {
		return nil, err
	}

	nb := divisor(n, cfg.normalized)
	scores = make(map[string]float64, n)
	for v, id := range sys.ord.Perm {
		scores[id] = (acc[v] - float64(v)) * 2 / nb
	}

	return scores, nil
}

// EdgeCurrentFlowBetweenness returns the current-flow betweenness of every
// edge of g. Parallel edges are merged into one conductor and self-loops are
// ignored, so each key appears once.
//
// Defaults: normalized, unit conductances, Full solver.
// Errors: as CurrentFlowBetweenness.
func EdgeCurrentFlowBetweenness(g *core.Graph, opts ...Option) (scores map[EdgeKey]float64, err error) {
	cfg := newConfig(opts...)
	c := startCall(g, cfg, "EdgeCurrentFlowBetweenness", solver.Full)
	defer func() { c.finish(err) }()

	if err = validate(g, cfg); err != nil {
		return nil, err
	}
	sys, err := c.assemble(g)
	if err != nil {
		return nil, err
	}
	it, err := flowmatrix.NewRowIterator(sys.l, sys.inv)
	if err != nil {
		return nil, err
	}

	n := sys.l.N()
	nb := divisor(n, cfg.normalized)
	rk := newRanker(n)
	scores = make(map[EdgeKey]float64, it.Len())
	for it.Next() {
		row := it.Row()
		pos := rk.rank(row)
		var acc float64
		for i, x := range row {
			p := pos[i] + 1
			acc += float64(i+1-p)*x + float64(n-i-p)*x
		}
		u, v := it.Edge()
		scores[NewEdgeKey(sys.ord.Perm[u], sys.ord.Perm[v])] = acc / nb
		c.solves++
	}
	if err = it.Err(); err != nil {
		return nil, err
	}

	return scores, nil
}
