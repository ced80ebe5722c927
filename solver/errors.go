// SPDX-License-Identifier: MIT

package solver

import "errors"

var (
	// ErrUnknownSolver indicates a solver name or Kind outside {full, lu, cg}.
	ErrUnknownSolver = errors.New("solver: unknown solver kind")

	// ErrSolverUnavailable indicates a known Kind whose backend is not registered.
	ErrSolverUnavailable = errors.New("solver: backend not available")

	// ErrSingular indicates that the reduced Laplacian could not be factorized
	// or inverted (the graph is not connected).
	ErrSingular = errors.New("solver: reduced laplacian is singular")

	// ErrNotConverged indicates that conjugate gradient hit its iteration cap.
	ErrNotConverged = errors.New("solver: conjugate gradient did not converge")

	// ErrDimensionMismatch indicates a right-hand side of the wrong length.
	ErrDimensionMismatch = errors.New("solver: dimension mismatch")

	// ErrRowOutOfRange indicates a row index outside [0, n).
	ErrRowOutOfRange = errors.New("solver: row index out of range")

	// ErrLaplacianNil indicates that New was called without a Laplacian.
	ErrLaplacianNil = errors.New("solver: laplacian is nil")
)
