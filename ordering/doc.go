// SPDX-License-Identifier: MIT

// Package ordering computes bandwidth-reducing vertex orderings and the
// bijection between original vertex IDs and dense matrix positions.
//
// What
//
//   - ReverseCuthillMcKee(g) returns an Ordering: Perm maps position → ID and
//     Index maps ID → position. Components are laid out one after another,
//     each seeded at a pseudo-peripheral vertex and swept breadth-first with
//     neighbors in ascending (degree, ID) order; the whole sequence is then
//     reversed.
//   - Identity(g) orders vertices by ID, for reference and testing.
//   - Relabel(g, ord) copies g with vertex IDs replaced by decimal positions.
//   - Bandwidth(g, ord) measures max |Index[u] − Index[v]| over edges.
//
// Determinism
//
//	Every tie is broken by vertex ID, so equal graphs give equal orderings.
//
// Complexity
//
//   - ReverseCuthillMcKee: O(k·(V + E) + Σ d log d) where k is the number
//     of pseudo-peripheral refinement rounds (small in practice).
package ordering
