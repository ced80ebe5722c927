// SPDX-License-Identifier: MIT

// Package solver provides the grounded inverse of a graph Laplacian.
//
// Node 0 of the Laplacian is the reference node: its potential is pinned to 0
// and row/column 0 are dropped, which leaves a symmetric positive definite
// (n−1)×(n−1) system for any connected graph. Every InverseLaplacian answers
// two questions about that system:
//
//	Solve(b) // potentials p with L·p = b on nodes 1..n−1 and p[0] = 0
//	Row(r)   // row r of the pinned inverse, padded to length n
//
// Three strategies are available and agree to solver tolerance:
//
//	Full  dense inverse formed once (gonum mat.Dense.Inverse)
//	LU    banded Cholesky factorization formed once (gonum mat.BandCholesky)
//	CG    Jacobi-preconditioned conjugate gradient per request (gonum floats)
//
// LU and CG keep the last Width() rows in a ring buffer, so consuming rows in
// increasing order computes every row once. Slices returned by Row are owned
// by the solver and stay valid only until Width() further rows are requested.
//
// Strategies are looked up in a registry; a Kind that parses but has no
// registered backend fails with ErrSolverUnavailable.
package solver
