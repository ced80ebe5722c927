// SPDX-License-Identifier: MIT
//
// File: rcm.go
// Role: Cuthill–McKee and Reverse Cuthill–McKee orderings.
// Determinism:
//   - Components in order of their smallest vertex ID; ties by degree then ID.
// AI-HINT (file):
//   - Multi-edges count once toward degree; self-loops are ignored.

package ordering

import (
	"github.com/katalvlaran/lvcurrent/bfs"
	"github.com/katalvlaran/lvcurrent/core"
)

// ReverseCuthillMcKee returns the reversed Cuthill–McKee ordering of g.
//
// Implementation:
//   - Stage 1: Compute the Cuthill–McKee sequence (see CuthillMcKee).
//   - Stage 2: Reverse it.
//
// Errors:
//   - ErrGraphNil, ErrDirected.
//
// Complexity:
//   - Same as CuthillMcKee.
func ReverseCuthillMcKee(g *core.Graph) (Ordering, error) {
	seq, err := cuthillMcKee(g)
	if err != nil {
		return Ordering{}, err
	}
	for i, j := 0, len(seq)-1; i < j; i, j = i+1, j-1 {
		seq[i], seq[j] = seq[j], seq[i]
	}

	return FromPerm(seq)
}

// CuthillMcKee returns the Cuthill–McKee ordering of g.
//
// Implementation:
//   - Stage 1: Split g into connected components.
//   - Stage 2: For each component pick a pseudo-peripheral start vertex.
//   - Stage 3: BFS from it, enqueueing neighbors by ascending (degree, ID).
//
// Errors:
//   - ErrGraphNil, ErrDirected.
func CuthillMcKee(g *core.Graph) (Ordering, error) {
	seq, err := cuthillMcKee(g)
	if err != nil {
		return Ordering{}, err
	}

	return FromPerm(seq)
}

func cuthillMcKee(g *core.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() || g.HasDirectedEdges() {
		return nil, ErrDirected
	}

	deg, err := degrees(g)
	if err != nil {
		return nil, err
	}
	less := func(a, b string) bool {
		if deg[a] != deg[b] {
			return deg[a] < deg[b]
		}
		return a < b
	}

	comps, err := bfs.ConnectedComponents(g)
	if err != nil {
		return nil, err
	}
	seq := make([]string, 0, g.VertexCount())
	for _, comp := range comps {
		start, err := pseudoPeripheral(g, comp[0], deg)
		if err != nil {
			return nil, err
		}
		res, err := bfs.BFS(g, start, bfs.WithNeighborOrder(less))
		if err != nil {
			return nil, err
		}
		seq = append(seq, res.Order...)
	}

	return seq, nil
}

// pseudoPeripheral walks to the lowest-degree farthest vertex until the
// eccentricity stops growing.
func pseudoPeripheral(g *core.Graph, start string, deg map[string]int) (string, error) {
	v, lp := start, -1
	for {
		res, err := bfs.BFS(g, v)
		if err != nil {
			return "", err
		}
		l := res.Eccentricity()
		if l <= lp {
			return v, nil
		}
		lp = l

		best := ""
		for id, d := range res.Depth {
			if d != l {
				continue
			}
			if best == "" || deg[id] < deg[best] || (deg[id] == deg[best] && id < best) {
				best = id
			}
		}
		v = best
	}
}

// degrees counts distinct non-self neighbors of every vertex.
func degrees(g *core.Graph) (map[string]int, error) {
	deg := make(map[string]int, g.VertexCount())
	for _, id := range g.Vertices() {
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return nil, err
		}
		d := len(nbrs)
		for _, n := range nbrs {
			if n == id {
				d--
			}
		}
		deg[id] = d
	}

	return deg, nil
}
