// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating graph views (copies with altered properties) and whole-graph measures.
// Determinism:
//   - Preserves edge IDs, weights and directedness unless documented otherwise.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.
// AI-HINT (file):
//   - Views do NOT mutate the input Graph.
//   - InducedSubgraph keeps only vertices in 'keep' and edges with both endpoints kept.
//   - Relabel requires a bijection over all vertices (ErrRelabelConflict otherwise).

package core

import "sync/atomic"

// UnweightedView returns a copy of g with the weighted flag off and every
// edge weight set to zero. Edge IDs and directedness are preserved.
// Complexity: O(V + E).
func UnweightedView(g *Graph) *Graph {
	out := g.Clone()
	out.muVert.Lock()
	out.weighted = false
	out.muVert.Unlock()

	out.muEdgeAdj.Lock()
	for _, e := range out.edges {
		e.Weight = 0
	}
	out.muEdgeAdj.Unlock()

	return out
}

// InducedSubgraph returns the subgraph induced by the vertices v with keep[v] == true.
// Unknown IDs in keep are ignored. The configuration of g is reused.
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	g.muVert.RLock()
	out := NewGraph(g.options()...)
	for id, v := range g.vertices {
		if keep[id] {
			out.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
			out.adjacencyList[id] = make(map[string]map[string]struct{})
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	atomic.StoreUint64(&out.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	for _, e := range g.edges {
		if keep[e.From] && keep[e.To] {
			ne := *e
			linkEdge(out, &ne)
		}
	}
	g.muEdgeAdj.RUnlock()

	return out
}

// Relabel returns a copy of g whose vertex IDs are replaced by mapping[id].
//
// Implementation:
//   - Stage 1: Validate that mapping covers every vertex with non-empty, pairwise distinct targets.
//   - Stage 2: Copy vertices under their new IDs, then edges with translated endpoints.
//
// Errors:
//   - ErrRelabelConflict: missing key, empty target or two vertices mapped to the same ID.
//
// Determinism:
//   - Edge IDs, weights and directedness are preserved.
//
// Complexity:
//   - Time O(V + E), Space O(V + E).
func (g *Graph) Relabel(mapping map[string]string) (*Graph, error) {
	g.muVert.RLock()
	seen := make(map[string]struct{}, len(g.vertices))
	for id := range g.vertices {
		to, ok := mapping[id]
		if !ok || to == "" {
			g.muVert.RUnlock()
			return nil, ErrRelabelConflict
		}
		if _, dup := seen[to]; dup {
			g.muVert.RUnlock()
			return nil, ErrRelabelConflict
		}
		seen[to] = struct{}{}
	}
	out := NewGraph(g.options()...)
	for id, v := range g.vertices {
		nid := mapping[id]
		out.vertices[nid] = &Vertex{ID: nid, Metadata: v.Metadata}
		out.adjacencyList[nid] = make(map[string]map[string]struct{})
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	atomic.StoreUint64(&out.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	for _, e := range g.edges {
		ne := *e
		ne.From, ne.To = mapping[e.From], mapping[e.To]
		linkEdge(out, &ne)
	}
	g.muEdgeAdj.RUnlock()

	return out, nil
}

// Density returns m / (n(n-1)) for directed graphs and 2m / (n(n-1)) otherwise,
// where m counts every edge (loops and parallel edges included).
// Graphs with fewer than two vertices have density 0.
// Complexity: O(1).
func (g *Graph) Density() float64 {
	n := float64(g.VertexCount())
	if n < 2 {
		return 0
	}
	m := float64(g.EdgeCount())
	d := m / (n * (n - 1))
	if !g.Directed() {
		d *= 2
	}

	return d
}
