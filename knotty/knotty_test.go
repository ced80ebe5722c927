package knotty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcurrent/builder"
	"github.com/katalvlaran/lvcurrent/core"
	"github.com/katalvlaran/lvcurrent/knotty"
)

func graphOf(t *testing.T, edges [][2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}

	return g
}

// triangle 0-1-2 with a tail 1-3 and a branch 1-4-5
func canonical(t *testing.T) *core.Graph {
	return graphOf(t, [][2]string{{"0", "1"}, {"0", "2"}, {"1", "2"}, {"1", "3"}, {"1", "4"}, {"4", "5"}})
}

func TestCentre_Canonical(t *testing.T) {
	g := canonical(t)

	res, err := knotty.Centre(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, res.Nodes)
	assert.InDelta(t, 1.0/3, res.Score, 1e-12)

	plain, err := knotty.Centre(g, knotty.WithCompact(false))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, plain.Nodes)
	assert.InDelta(t, 2.0/3, plain.Score, 1e-12)
}

func TestCentre_TwoClusters(t *testing.T) {
	// square 0-1-2-3 with chord 0-2, bridge 3-4, triangle 4-5-6
	g := graphOf(t, [][2]string{
		{"0", "1"}, {"1", "2"}, {"2", "3"}, {"3", "0"}, {"0", "2"},
		{"3", "4"}, {"4", "5"}, {"5", "6"}, {"6", "4"},
	})

	res, err := knotty.Centre(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "2", "3"}, res.Nodes)
	assert.InDelta(t, 0.35374149659863946, res.Score, 1e-9)

	plain, err := knotty.Centre(g, knotty.WithCompact(false))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "2", "3", "4"}, plain.Nodes)
	assert.InDelta(t, 2.0/3, plain.Score, 1e-9)
}

func TestCentre_NoBetweenness(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(5))
	require.NoError(t, err)
	res, err := knotty.Centre(g)
	require.NoError(t, err)
	assert.Empty(t, res.Nodes)
	assert.Zero(t, res.Score)
}

func TestCentre_Errors(t *testing.T) {
	_, err := knotty.Centre(nil)
	assert.ErrorIs(t, err, knotty.ErrGraphNil)

	_, err = knotty.Centre(core.NewGraph())
	assert.ErrorIs(t, err, knotty.ErrEmptyGraph)

	_, err = knotty.Centre(core.NewGraph(core.WithDirected(true)))
	assert.ErrorIs(t, err, knotty.ErrDirected)

	_, err = knotty.Centre(core.NewGraph(core.WithMultiEdges()))
	assert.ErrorIs(t, err, knotty.ErrMultigraph)
}
