// SPDX-License-Identifier: MIT

// Package laplacian builds the weighted Laplacian L = D − A of an undirected
// graph in compressed sparse row form, with rows placed by an
// ordering.Ordering.
//
// Conductances are edge weights when WithWeights(true) is given on a
// weighted graph, 1 otherwise. Parallel edges are summed and self-loops are
// ignored, so the result is always symmetric with zero row sums.
//
// The grounded ("reduced") system used by current-flow solvers drops row and
// column 0. MulVecReduced applies it matrix-free; ReducedDense and
// ReducedSymBand export it to gonum for factorization.
package laplacian
