// Package bfs provides a breadth-first search over a core.Graph,
// returning unweighted hop distances, parent links, and visit order, plus
// the connectivity probes used by the numeric packages.
//
// What
//
//   - BFS(g, start, opts...) explores vertices in non-decreasing hop count.
//   - BFSResult carries Order, Depth, Parent, plus Eccentricity() and PathTo().
//   - ConnectedComponents(g) and IsConnected(g) gate algorithms that need a
//     single connected resistor network.
//   - WithNeighborOrder(less) changes the neighbor visiting order; the
//     Reverse Cuthill–McKee ordering uses it to visit by ascending degree.
//
// Determinism
//
//	core.NeighborIDs returns sorted IDs and the optional NeighborLess sort is
//	stable, so the visit sequence is fully reproducible.
//
// Weights
//
//	Edge weights are ignored: BFS measures hops only, so weighted graphs are
//	accepted as-is.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) plus O(d log d) per vertex when NeighborLess is set
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an Option is invalid (negative MaxDepth, nil order).
//   - ErrNeighbors            if core.NeighborIDs fails for any vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
