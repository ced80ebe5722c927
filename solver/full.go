// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvcurrent/laplacian"
)

// fullSolver stores the padded n×n inverse; row 0 and column 0 are zero.
type fullSolver struct {
	n     int
	width int
	data  []float64
}

func newFull(l *laplacian.Laplacian, _ config) (InverseLaplacian, error) {
	n := l.N()
	var inv mat.Dense
	if err := classify(inv.Inverse(l.ReducedDense())); err != nil {
		return nil, fmt.Errorf("full inverse: %w", err)
	}
	s := &fullSolver{n: n, width: l.Width(), data: make([]float64, n*n)}
	for i := 1; i < n; i++ {
		for j := 1; j < n; j++ {
			s.data[i*n+j] = inv.At(i-1, j-1)
		}
	}

	return s, nil
}

func (s *fullSolver) Solve(b []float64) ([]float64, error) {
	if err := checkRHS(b, s.n); err != nil {
		return nil, err
	}
	p := make([]float64, s.n)
	for i := 1; i < s.n; i++ {
		p[i] = floats.Dot(s.data[i*s.n:(i+1)*s.n], b)
	}

	return p, nil
}

func (s *fullSolver) Row(r int) ([]float64, error) {
	if r < 0 || r >= s.n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrRowOutOfRange, r, s.n)
	}

	return s.data[r*s.n : (r+1)*s.n : (r+1)*s.n], nil
}

func (s *fullSolver) Width() int { return s.width }
func (s *fullSolver) N() int     { return s.n }

// classify maps gonum failures: an infinite Condition is a singular matrix,
// a finite Condition only warns about accuracy and is dropped.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var cond mat.Condition
	if errors.As(err, &cond) {
		if math.IsInf(float64(cond), 1) || math.IsNaN(float64(cond)) {
			return fmt.Errorf("%w: %v", ErrSingular, err)
		}

		return nil
	}

	return err
}
