// SPDX-License-Identifier: MIT
// Package laplacian - sparse weighted graph Laplacian in CSR form.
//
// Deliverables:
//   1) L[i][i] = Σ conductances incident to i; L[i][j] = −Σ conductances between i and j.
//   2) Parallel edges are summed; self-loops contribute nothing.
//   3) Rows follow the positions of an ordering.Ordering; columns are sorted per row.
//   4) Reduced views drop row/column 0 (the grounded reference vertex).
//
// AI-Hints:
//   - Build once per call; the structure is immutable afterwards.
//   - Bandwidth() is what banded factorizations size themselves by.

package laplacian

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvcurrent/core"
	"github.com/katalvlaran/lvcurrent/ordering"
)

// Laplacian is a symmetric n×n matrix stored in compressed sparse row form.
// Row i holds columns ColInd[RowPtr[i]:RowPtr[i+1]] with values in Val.
type Laplacian struct {
	n      int
	RowPtr []int
	ColInd []int
	Val    []float64
}

// Build assembles the Laplacian of g with rows ordered by ord.
//
// Implementation:
//   - Stage 1: Validate the graph (ErrGraphNil, ErrDirected) and the ordering.
//   - Stage 2: Accumulate conductances per unordered pair, skipping self-loops.
//   - Stage 3: Emit CSR rows with sorted columns and the diagonal.
//
// Errors:
//   - ErrGraphNil, ErrDirected, ErrUnknownVertex (ordering mismatch), ErrInvalidWeight.
//
// Complexity:
//   - Time O(V + E log Δ), Space O(V + E).
func Build(g *core.Graph, ord ordering.Ordering, opts ...Option) (*Laplacian, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() || g.HasDirectedEdges() {
		return nil, ErrDirected
	}
	if err := ord.Validate(g); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownVertex, err)
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	useWeights := o.useWeights && g.Weighted()

	n := ord.Len()
	off := make([]map[int]float64, n)
	diag := make([]float64, n)
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		c := 1.0
		if useWeights {
			c = e.Weight
		}
		if !(c > 0) || math.IsInf(c, 0) {
			return nil, fmt.Errorf("%w: edge %s (%s–%s) weight %g", ErrInvalidWeight, e.ID, e.From, e.To, c)
		}
		u, v := ord.Index[e.From], ord.Index[e.To]
		if off[u] == nil {
			off[u] = make(map[int]float64)
		}
		if off[v] == nil {
			off[v] = make(map[int]float64)
		}
		off[u][v] -= c
		off[v][u] -= c
		diag[u] += c
		diag[v] += c
	}

	l := &Laplacian{n: n, RowPtr: make([]int, n+1)}
	cols := make([]int, 0, 8)
	for i := 0; i < n; i++ {
		cols = cols[:0]
		for j := range off[i] {
			cols = append(cols, j)
		}
		cols = append(cols, i)
		sort.Ints(cols)
		for _, j := range cols {
			l.ColInd = append(l.ColInd, j)
			if j == i {
				l.Val = append(l.Val, diag[i])
			} else {
				l.Val = append(l.Val, off[i][j])
			}
		}
		l.RowPtr[i+1] = len(l.ColInd)
	}

	return l, nil
}

// N returns the dimension of the matrix.
func (l *Laplacian) N() int { return l.n }

// Row returns the column indices and values of row i (shared, read-only).
func (l *Laplacian) Row(i int) ([]int, []float64) {
	lo, hi := l.RowPtr[i], l.RowPtr[i+1]

	return l.ColInd[lo:hi], l.Val[lo:hi]
}

// At returns L[i][j].
func (l *Laplacian) At(i, j int) float64 {
	cols, vals := l.Row(i)
	k := sort.SearchInts(cols, j)
	if k < len(cols) && cols[k] == j {
		return vals[k]
	}

	return 0
}

// Diagonal returns a copy of the diagonal.
func (l *Laplacian) Diagonal() []float64 {
	d := make([]float64, l.n)
	for i := range d {
		d[i] = l.At(i, i)
	}

	return d
}

// Bandwidth returns max |i − j| over non-zero entries.
func (l *Laplacian) Bandwidth() int {
	bw := 0
	for i := 0; i < l.n; i++ {
		cols, _ := l.Row(i)
		if len(cols) == 0 {
			continue
		}
		if d := i - cols[0]; d > bw {
			bw = d
		}
		if d := cols[len(cols)-1] - i; d > bw {
			bw = d
		}
	}

	return bw
}

// Width returns the widest row span (last − first column + 1). A ring of
// Width rows always holds every row between the endpoints of an edge.
func (l *Laplacian) Width() int {
	w := 0
	for i := 0; i < l.n; i++ {
		cols, _ := l.Row(i)
		if len(cols) == 0 {
			continue
		}
		if s := cols[len(cols)-1] - cols[0] + 1; s > w {
			w = s
		}
	}
	if w == 0 {
		w = 1
	}

	return w
}

// Edges calls fn for every off-diagonal pair u < v with its conductance.
// Pairs are visited in ascending (u, v) order.
func (l *Laplacian) Edges(fn func(u, v int, c float64) bool) {
	for u := 0; u < l.n; u++ {
		cols, vals := l.Row(u)
		for k, v := range cols {
			if v <= u {
				continue
			}
			if !fn(u, v, -vals[k]) {
				return
			}
		}
	}
}

// MulVec computes dst = L·x.
func (l *Laplacian) MulVec(dst, x []float64) error {
	if len(dst) != l.n || len(x) != l.n {
		return fmt.Errorf("%w: n=%d, len(dst)=%d, len(x)=%d", ErrDimensionMismatch, l.n, len(dst), len(x))
	}
	for i := 0; i < l.n; i++ {
		cols, vals := l.Row(i)
		s := 0.0
		for k, j := range cols {
			s += vals[k] * x[j]
		}
		dst[i] = s
	}

	return nil
}

// MulVecReduced computes dst = L₁·x for the reduced (n−1)×(n−1) system where
// reduced index k corresponds to full index k+1.
func (l *Laplacian) MulVecReduced(dst, x []float64) error {
	m := l.n - 1
	if m < 0 || len(dst) != m || len(x) != m {
		return fmt.Errorf("%w: reduced n=%d, len(dst)=%d, len(x)=%d", ErrDimensionMismatch, m, len(dst), len(x))
	}
	for i := 1; i < l.n; i++ {
		cols, vals := l.Row(i)
		s := 0.0
		for k, j := range cols {
			if j == 0 {
				continue
			}
			s += vals[k] * x[j-1]
		}
		dst[i-1] = s
	}

	return nil
}
