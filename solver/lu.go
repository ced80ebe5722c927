// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvcurrent/laplacian"
)

// luSolver holds the banded Cholesky factor of the reduced Laplacian.
// Memory is O(n·w) for bandwidth w.
type luSolver struct {
	n     int
	chol  mat.BandCholesky
	rhs   *mat.VecDense
	cache *rowCache
}

func newLU(l *laplacian.Laplacian, _ config) (InverseLaplacian, error) {
	s := &luSolver{n: l.N()}
	if ok := s.chol.Factorize(l.ReducedSymBand()); !ok {
		return nil, fmt.Errorf("band cholesky: %w", ErrSingular)
	}
	s.rhs = mat.NewVecDense(s.n-1, nil)
	s.cache = newRowCache(s.n, l.Width(), s.fillRow)

	return s, nil
}

func (s *luSolver) solveInto(dst []float64) error {
	x := mat.NewVecDense(s.n-1, dst[1:])
	if err := classify(s.chol.SolveVecTo(x, s.rhs)); err != nil {
		return fmt.Errorf("band cholesky solve: %w", err)
	}
	dst[0] = 0

	return nil
}

func (s *luSolver) fillRow(r int, dst []float64) error {
	s.rhs.Zero()
	s.rhs.SetVec(r-1, 1)

	return s.solveInto(dst)
}

func (s *luSolver) Solve(b []float64) ([]float64, error) {
	if err := checkRHS(b, s.n); err != nil {
		return nil, err
	}
	for i := 1; i < s.n; i++ {
		s.rhs.SetVec(i-1, b[i])
	}
	p := make([]float64, s.n)
	if err := s.solveInto(p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *luSolver) Row(r int) ([]float64, error) { return s.cache.row(r) }
func (s *luSolver) Width() int                   { return s.cache.width() }
func (s *luSolver) N() int                       { return s.n }
