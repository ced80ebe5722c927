// SPDX-License-Identifier: MIT

package community

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvcurrent/centrality"
	"github.com/katalvlaran/lvcurrent/core"
)

// mirror is a gonum copy of a core.Graph with int64 node IDs.
// Parallel edges collapse to the shortest one; self-loops are dropped.
type mirror struct {
	ids []string // gonum ID -> vertex ID
	g   graph.Undirected
}

func newMirror(g *core.Graph, weighted bool) (*mirror, error) {
	verts := g.Vertices()
	index := make(map[string]int64, len(verts))
	m := &mirror{ids: verts}

	if !weighted {
		ug := simple.NewUndirectedGraph()
		for i, id := range verts {
			index[id] = int64(i)
			ug.AddNode(simple.Node(i))
		}
		for _, e := range g.Edges() {
			if e.From == e.To {
				continue
			}
			ug.SetEdge(ug.NewEdge(simple.Node(index[e.From]), simple.Node(index[e.To])))
		}
		m.g = ug

		return m, nil
	}

	wg := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for i, id := range verts {
		index[id] = int64(i)
		wg.AddNode(simple.Node(i))
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		if !(e.Weight > 0) || math.IsInf(e.Weight, 0) {
			return nil, fmt.Errorf("%w: edge %s (%s–%s) weight %g", ErrInvalidWeight, e.ID, e.From, e.To, e.Weight)
		}
		u, v := index[e.From], index[e.To]
		if w, ok := wg.Weight(u, v); ok && w <= e.Weight {
			continue
		}
		wg.SetWeightedEdge(wg.NewWeightedEdge(simple.Node(u), simple.Node(v), e.Weight))
	}
	m.g = wg

	return m, nil
}

// edgeBetweenness returns shortest-path edge betweenness keyed by vertex IDs.
func (m *mirror) edgeBetweenness() map[centrality.EdgeKey]float64 {
	var raw map[[2]int64]float64
	if wg, ok := m.g.(*simple.WeightedUndirectedGraph); ok {
		raw = network.EdgeBetweennessWeighted(wg, path.DijkstraAllPaths(wg))
	} else {
		raw = network.EdgeBetweenness(m.g)
	}
	out := make(map[centrality.EdgeKey]float64, len(raw))
	for e, b := range raw {
		out[centrality.NewEdgeKey(m.ids[e[0]], m.ids[e[1]])] += b
	}

	return out
}
