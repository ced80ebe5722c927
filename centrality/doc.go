// SPDX-License-Identifier: MIT

// Package centrality computes current-flow (random-walk) betweenness for the
// vertices and edges of an undirected, connected core.Graph.
//
// Every graph is treated as an electrical network whose edges are resistors
// with conductance equal to the edge weight (WithWeighted) or 1. For a unit
// current injected at s and extracted at t, the throughput of a vertex is
// half the absolute current on its incident edges; current-flow betweenness
// averages that throughput over all source/target pairs.
//
// # Exact scores
//
// CurrentFlowBetweenness and EdgeCurrentFlowBetweenness stream one row of
// the flow matrix per edge (package flowmatrix) and accumulate each row's
// contribution from the rank of its entries, which avoids enumerating the
// O(n²) source/target pairs explicitly. Vertices are first renumbered by
// reverse Cuthill–McKee so the banded LU solver stays narrow. Time is
// O(m·√n·log n) for the LU solver on sparse graphs; memory O(n·w) where w is
// the bandwidth of the reordered Laplacian.
//
// # Approximate scores
//
// ApproximateCurrentFlowBetweenness samples k random source/target pairs,
// with
//
//	c* = n(n−1) / ((n−1)(n−2))
//	k  = ⌈(c*/ε)² · ln n⌉
//
// so that each score is within ε of the exact value with high probability.
// A k above WithKMax fails with ErrSampleBudget before any linear solve.
// Randomness comes only from WithRand or WithSeed; without either a fixed
// seed is used and results are reproducible.
//
// # Normalization
//
// Normalized scores (the default) divide by (n−1)(n−2), the number of ordered
// pairs that exclude the vertex. Unnormalized scores divide by 2. Graphs with
// fewer than three vertices fall back to the unnormalized divisor.
//
// # Instrumentation
//
// Each call opens an OpenTelemetry span and records latency and solve counts
// through the global providers; both are no-ops until the application
// installs an SDK. Debug logs go to WithLogger (slog.Default otherwise).
package centrality
