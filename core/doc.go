// SPDX-License-Identifier: MIT

// Package core provides the thread-safe in-memory Graph on which every
// lvcurrent algorithm operates.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Per-edge orientation in “mixed” graphs (WithMixedEdges + WithEdgeDirected)
//   - Weighted vs. unweighted edges (WithWeighted); weights are float64
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation (“e1”, “e2”, …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Deterministic iteration: Vertices(), NeighborIDs() return sorted IDs and
// Edges() returns edges in creation order. Numeric algorithms build their
// index spaces from these enumerations, so equal graphs give equal results.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                 // O(1)
//	HasVertex(id string) bool                  // O(1)
//	RemoveVertex(id string) error              // O(E)
//
//	// Edge lifecycle
//	AddEdge(from, to string, w float64, opts ...EdgeOption) (string, error) // O(1)
//	RemoveEdge(edgeID string) error            // O(1)
//	RemoveEdgesBetween(from, to string) (int, error)
//	HasEdge(from, to string) bool              // O(1)
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)      // O(d·log d)
//	NeighborIDs(id string) ([]string, error)   // O(d·log d), unique, sorted
//	Vertices() []string                        // O(V·log V)
//	Edges() []*Edge                            // O(E·log E)
//	Degree(id string) (in, out, undirected int, err error)
//	Density() float64
//
//	// Copies
//	Clone(), CloneEmpty(), Relabel(mapping), InducedSubgraph(g, keep), UnweightedView(g)
//
// Errors:
//
//	ErrEmptyVertexID        – zero-length vertex ID
//	ErrVertexNotFound       – missing vertex
//	ErrEdgeNotFound         – missing edge
//	ErrBadWeight            – non-zero weight on unweighted graph, or NaN
//	ErrLoopNotAllowed       – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed  – parallel edge when multi-edges disabled
//	ErrMixedEdgesNotAllowed – per-edge override without mixed-mode
//	ErrRelabelConflict      – relabel mapping is not a bijection
package core
