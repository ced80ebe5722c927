// File: components.go
// Role: Connected components and connectivity probes built on BFS.
// Determinism:
//   - Each component is sorted ascending; components are ordered by their first vertex.
// AI-HINT (file):
//   - Directed edges are followed forward only; callers working on directed
//     graphs must symmetrize first.

package bfs

import (
	"sort"

	"github.com/katalvlaran/lvcurrent/core"
)

// ConnectedComponents partitions the vertices of g into connected components.
//
// Implementation:
//   - Stage 1: Iterate Vertices() ascending; every unvisited vertex seeds a BFS.
//   - Stage 2: Collect each BFS order, then sort it.
//
// Returns:
//   - [][]string: components, each sorted, ordered by smallest member.
//
// Errors:
//   - ErrGraphNil if g == nil; neighbor failures propagate.
//
// Complexity:
//   - Time O(V log V + E), Space O(V).
func ConnectedComponents(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	seen := make(map[string]bool, g.VertexCount())
	var comps [][]string
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		res, err := BFS(g, v)
		if err != nil {
			return nil, err
		}
		comp := make([]string, len(res.Order))
		copy(comp, res.Order)
		for _, id := range comp {
			seen[id] = true
		}
		sort.Strings(comp)
		comps = append(comps, comp)
	}

	return comps, nil
}

// IsConnected reports whether every vertex of g is reachable from the first one.
// The empty graph is not connected (there is no component to speak of).
//
// Complexity: O(V + E).
func IsConnected(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	vs := g.Vertices()
	if len(vs) == 0 {
		return false, nil
	}
	res, err := BFS(g, vs[0])
	if err != nil {
		return false, err
	}

	return len(res.Order) == len(vs), nil
}
