// SPDX-License-Identifier: MIT

// Package builder provides deterministic, “functional-options”-style
// constructors for the canonical graphs used to exercise and benchmark the
// current-flow algorithms.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...) creates a core.Graph and runs constructors in order.
//     – Apply(g, bopts, cons...) runs constructors against an existing graph.
//   - Topologies (Constructor factories):
//     – Path(n), Cycle(n), Star(n), Wheel(n), Complete(n), Grid(r, c).
//     – Barbell(m, p): two K_m bells joined by a path of p inner vertices.
//     – RandomSparse(n, p): G(n, p), reproducible under WithSeed.
//   - Vertex-ID schemes (IDFn): DefaultIDFn, SymbolIDFn, PaddedIDFn, SymbolNumberIDFn.
//   - Edge-weight generators (WeightFn): DefaultWeightFn, ConstantWeightFn, UniformWeightFn.
//     Every generator yields strictly positive weights, as conductances require.
//
// Guarantees:
//
//   - Same inputs, options, seed and constructor order ⇒ identical graphs.
//   - Invalid option parameters panic in the option constructor; invalid build
//     parameters surface as sentinel errors wrapped with the constructor name.
//   - Unweighted graphs receive zero weights; weighted graphs draw from the WeightFn.
package builder
