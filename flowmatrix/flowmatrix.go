// Package flowmatrix streams the rows of the flow matrix of a grounded
// Laplacian: one row per edge (u, v), u < v, holding
//
//	row[i] = c · (Inv[u][i] − Inv[v][i])
//
// where c is the edge conductance and Inv the pinned inverse. row[i] is the
// current on edge (u, v) when a unit current enters at i and leaves at the
// reference node.
package flowmatrix

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvcurrent/laplacian"
	"github.com/katalvlaran/lvcurrent/solver"
)

var (
	// ErrNilInput indicates a nil Laplacian or solver.
	ErrNilInput = errors.New("flowmatrix: nil laplacian or solver")
	// ErrDimensionMismatch indicates a solver built for a different Laplacian size.
	ErrDimensionMismatch = errors.New("flowmatrix: solver and laplacian sizes differ")
)

// Edge is one conductor of the flow matrix, in Laplacian positions.
type Edge struct {
	U, V int
	C    float64
}

// RowIterator yields flow-matrix rows in ascending (U, V) order.
// It is single pass and holds the solver by reference.
//
//	it, _ := flowmatrix.NewRowIterator(l, inv)
//	for it.Next() {
//		u, v := it.Edge()
//		use(u, v, it.Row())
//	}
//	if err := it.Err(); err != nil { ... }
type RowIterator struct {
	inv   solver.InverseLaplacian
	edges []Edge
	pos   int
	cur   Edge
	row   []float64
	err   error
}

// NewRowIterator prepares the iterator; no rows are computed yet.
func NewRowIterator(l *laplacian.Laplacian, inv solver.InverseLaplacian) (*RowIterator, error) {
	if l == nil || inv == nil {
		return nil, ErrNilInput
	}
	if l.N() != inv.N() {
		return nil, fmt.Errorf("%w: laplacian %d, solver %d", ErrDimensionMismatch, l.N(), inv.N())
	}
	it := &RowIterator{inv: inv, row: make([]float64, l.N())}
	l.Edges(func(u, v int, c float64) bool {
		it.edges = append(it.edges, Edge{U: u, V: v, C: c})

		return true
	})

	return it, nil
}

// Next computes the next row. It returns false when the edges are exhausted
// or a solver error occurred; check Err afterwards.
func (it *RowIterator) Next() bool {
	if it.err != nil || it.pos >= len(it.edges) {
		return false
	}
	e := it.edges[it.pos]
	it.pos++

	// Row(v) may evict Row(u) from the solver's ring, so u is consumed first.
	ru, err := it.inv.Row(e.U)
	if err != nil {
		it.err = fmt.Errorf("flow row (%d,%d): %w", e.U, e.V, err)
		return false
	}
	floats.ScaleTo(it.row, e.C, ru)
	rv, err := it.inv.Row(e.V)
	if err != nil {
		it.err = fmt.Errorf("flow row (%d,%d): %w", e.U, e.V, err)
		return false
	}
	floats.AddScaled(it.row, -e.C, rv)
	it.cur = e

	return true
}

// Row returns the current row. The slice is reused by the next call to Next.
func (it *RowIterator) Row() []float64 { return it.row }

// Edge returns the Laplacian positions of the current edge.
func (it *RowIterator) Edge() (u, v int) { return it.cur.U, it.cur.V }

// Conductance returns the conductance of the current edge.
func (it *RowIterator) Conductance() float64 { return it.cur.C }

// Len returns the total number of rows.
func (it *RowIterator) Len() int { return len(it.edges) }

// Err returns the error that stopped iteration, if any.
func (it *RowIterator) Err() error { return it.err }
