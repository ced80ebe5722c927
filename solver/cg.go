// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvcurrent/laplacian"
)

// cgSolver runs Jacobi-preconditioned conjugate gradient on the reduced
// system, applying the Laplacian through its CSR form.
type cgSolver struct {
	l       *laplacian.Laplacian
	n       int
	tol     float64
	maxIter int
	diag    []float64 // reduced diagonal
	// scratch, len n−1
	b, r, z, p, ap []float64
	cache          *rowCache
}

func newCG(l *laplacian.Laplacian, cfg config) (InverseLaplacian, error) {
	n := l.N()
	m := n - 1
	s := &cgSolver{
		l:       l,
		n:       n,
		tol:     cfg.tol,
		maxIter: cfg.iterations(n),
		diag:    l.Diagonal()[1:],
		b:       make([]float64, m),
		r:       make([]float64, m),
		z:       make([]float64, m),
		p:       make([]float64, m),
		ap:      make([]float64, m),
	}
	for i, d := range s.diag {
		if !(d > 0) {
			return nil, fmt.Errorf("%w: zero diagonal at node %d", ErrSingular, i+1)
		}
	}
	s.cache = newRowCache(n, l.Width(), s.fillRow)

	return s, nil
}

// solveReduced solves L₁·x = s.b. x must have len n−1.
func (s *cgSolver) solveReduced(x []float64) error {
	clear(x)
	bnorm := floats.Norm(s.b, 2)
	if bnorm == 0 {
		return nil
	}
	copy(s.r, s.b)
	floats.DivTo(s.z, s.r, s.diag)
	copy(s.p, s.z)
	rz := floats.Dot(s.r, s.z)

	for it := 0; it < s.maxIter; it++ {
		if err := s.l.MulVecReduced(s.ap, s.p); err != nil {
			return err
		}
		pap := floats.Dot(s.p, s.ap)
		if !(pap > 0) {
			return fmt.Errorf("%w: non-positive curvature at iteration %d", ErrSingular, it)
		}
		alpha := rz / pap
		floats.AddScaled(x, alpha, s.p)
		floats.AddScaled(s.r, -alpha, s.ap)
		if floats.Norm(s.r, 2) <= s.tol*bnorm {
			return nil
		}
		floats.DivTo(s.z, s.r, s.diag)
		next := floats.Dot(s.r, s.z)
		floats.Scale(next/rz, s.p)
		floats.Add(s.p, s.z)
		rz = next
	}

	return fmt.Errorf("%w: %d iterations, tol %g", ErrNotConverged, s.maxIter, s.tol)
}

func (s *cgSolver) fillRow(r int, dst []float64) error {
	clear(s.b)
	s.b[r-1] = 1
	dst[0] = 0

	return s.solveReduced(dst[1:])
}

func (s *cgSolver) Solve(b []float64) ([]float64, error) {
	if err := checkRHS(b, s.n); err != nil {
		return nil, err
	}
	copy(s.b, b[1:])
	p := make([]float64, s.n)
	if err := s.solveReduced(p[1:]); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *cgSolver) Row(r int) ([]float64, error) { return s.cache.row(r) }
func (s *cgSolver) Width() int                   { return s.cache.width() }
func (s *cgSolver) N() int                       { return s.n }
