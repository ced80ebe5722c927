// SPDX-License-Identifier: MIT

package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcurrent/core"
)

func TestAddVertex_Idempotent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"))
	assert.Equal(t, 1, g.VertexCount())
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
}

func TestAddEdge_Policies(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 2.5)
	assert.ErrorIs(t, err, core.ErrBadWeight, "unweighted graph must reject non-zero weight")

	_, err = g.AddEdge("A", "A", 0)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "A", 0)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed, "undirected edge is mirrored")

	_, err = g.AddEdge("A", "C", 0, core.WithEdgeDirected(true))
	assert.ErrorIs(t, err, core.ErrMixedEdgesNotAllowed)

	w := core.NewGraph(core.WithWeighted())
	_, err = w.AddEdge("A", "B", math.NaN())
	assert.ErrorIs(t, err, core.ErrBadWeight)
}

func TestEdges_CreationOrder(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	for i := 0; i < 12; i++ {
		_, err := g.AddEdge("v", string(rune('a'+i)), float64(i+1))
		require.NoError(t, err)
	}
	edges := g.Edges()
	require.Len(t, edges, 12)
	for i, e := range edges {
		assert.InDelta(t, float64(i+1), e.Weight, 0, "e10 must follow e9")
	}
}

func TestRemoveEdgesBetween_Multigraph(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges(), core.WithWeighted())
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "A", 2)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 3)
	require.NoError(t, err)

	assert.Len(t, g.EdgesBetween("A", "B"), 2)
	n, err := g.RemoveEdgesBetween("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.False(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
	assert.True(t, g.HasEdge("C", "B"))

	_, err = g.RemoveEdgesBetween("A", "B")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestNeighborIDs_SortedUnique(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	for _, to := range []string{"D", "B", "C", "B"} {
		_, err := g.AddEdge("A", to, 0)
		require.NoError(t, err)
	}
	ids, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "D"}, ids)

	_, err = g.NeighborIDs("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestRemoveVertex_DropsIncidentEdges(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	require.NoError(t, g.RemoveVertex("B"))
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, []string{"A", "C"}, g.Vertices())
	assert.ErrorIs(t, g.RemoveVertex("B"), core.ErrVertexNotFound)
}

func TestDegree(t *testing.T) {
	g := core.NewMixedGraph(core.WithLoops())
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("A", "A", 0)
	_, _ = g.AddEdge("C", "A", 0, core.WithEdgeDirected(true))
	in, out, und, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 1, in)
	assert.Equal(t, 0, out)
	assert.Equal(t, 3, und)
	assert.True(t, g.HasDirectedEdges())
}

func TestClone_Independent(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1.5)
	_, _ = g.AddEdge("B", "C", 2.5)
	c := g.Clone()
	_, err := c.RemoveEdgesBetween("A", "B")
	require.NoError(t, err)
	assert.True(t, g.HasEdge("A", "B"))
	assert.Equal(t, 1, c.EdgeCount())

	id, err := c.AddEdge("A", "C", 1)
	require.NoError(t, err)
	assert.Equal(t, "e3", id, "clone continues the edge ID sequence")
}

func TestRelabel(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("x", "y", 4)
	_, _ = g.AddEdge("y", "z", 5)

	r, err := g.Relabel(map[string]string{"x": "2", "y": "0", "z": "1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, r.Vertices())
	es := r.EdgesBetween("0", "1")
	require.Len(t, es, 1)
	assert.InDelta(t, 5.0, es[0].Weight, 0)
	assert.True(t, r.Weighted())

	_, err = g.Relabel(map[string]string{"x": "a", "y": "a", "z": "b"})
	assert.ErrorIs(t, err, core.ErrRelabelConflict)
	_, err = g.Relabel(map[string]string{"x": "a"})
	assert.ErrorIs(t, err, core.ErrRelabelConflict)
}

func TestInducedSubgraphAndDensity(t *testing.T) {
	g := core.NewGraph()
	for _, p := range [][2]string{{"0", "1"}, {"0", "2"}, {"1", "2"}, {"1", "3"}, {"1", "4"}, {"4", "5"}} {
		_, err := g.AddEdge(p[0], p[1], 0)
		require.NoError(t, err)
	}
	sub := core.InducedSubgraph(g, map[string]bool{"0": true, "1": true, "2": true, "3": true})
	assert.Equal(t, 4, sub.VertexCount())
	assert.Equal(t, 4, sub.EdgeCount())
	assert.InDelta(t, 2.0*4/12, sub.Density(), 1e-12)
	assert.InDelta(t, 2.0*6/30, g.Density(), 1e-12)
	assert.Zero(t, core.NewGraph().Density())
}

func TestUnweightedView(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 7)
	v := core.UnweightedView(g)
	assert.False(t, v.Weighted())
	assert.Zero(t, v.Edges()[0].Weight)
	assert.InDelta(t, 7.0, g.Edges()[0].Weight, 0)
}

func TestStats(t *testing.T) {
	g := core.NewMixedGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0, core.WithEdgeDirected(true))
	s := g.Stats()
	assert.True(t, s.MixedMode)
	assert.Equal(t, 3, s.VertexCount)
	assert.Equal(t, 1, s.DirectedEdgeCount)
	assert.Equal(t, 1, s.UndirectedEdgeCount)

	g.Clear()
	assert.Zero(t, g.VertexCount())
	assert.True(t, g.MixedEdges())
}
