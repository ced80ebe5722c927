// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"github.com/katalvlaran/lvcurrent/laplacian"
)

// InverseLaplacian answers linear-system queries against the grounded
// Laplacian of a connected graph. Implementations are not safe for
// concurrent use.
type InverseLaplacian interface {
	// Solve returns potentials p (len n, p[0] = 0) for the injection vector b (len n).
	// b[0] is ignored.
	Solve(b []float64) ([]float64, error)
	// Row returns row r of the pinned inverse (len n). Row(0) is all zeros.
	Row(r int) ([]float64, error)
	// Width is the number of rows the solver keeps resident.
	Width() int
	// N is the dimension of the full Laplacian.
	N() int
}

type constructor func(l *laplacian.Laplacian, cfg config) (InverseLaplacian, error)

var registry = map[Kind]constructor{
	Full: newFull,
	LU:   newLU,
	CG:   newCG,
}

// New builds the InverseLaplacian of kind for l.
//
// Errors:
//   - ErrUnknownSolver for a Kind outside {Full, LU, CG}.
//   - ErrSolverUnavailable when the kind has no registered backend.
//   - ErrSingular when factorization fails.
func New(kind Kind, l *laplacian.Laplacian, opts ...Option) (InverseLaplacian, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSolver, int(kind))
	}
	ctor, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSolverUnavailable, kind)
	}
	if l == nil {
		return nil, ErrLaplacianNil
	}
	if l.N() < 2 {
		return &grounded{n: l.N()}, nil
	}

	return ctor(l, newConfig(opts...))
}

// grounded serves graphs with at most one node: every potential is pinned.
type grounded struct{ n int }

func (s *grounded) Solve(b []float64) ([]float64, error) {
	if len(b) != s.n {
		return nil, fmt.Errorf("%w: len(b)=%d, n=%d", ErrDimensionMismatch, len(b), s.n)
	}

	return make([]float64, s.n), nil
}

func (s *grounded) Row(r int) ([]float64, error) {
	if r < 0 || r >= s.n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrRowOutOfRange, r, s.n)
	}

	return make([]float64, s.n), nil
}

func (s *grounded) Width() int { return 1 }
func (s *grounded) N() int     { return s.n }
