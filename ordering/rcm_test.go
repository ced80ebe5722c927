// SPDX-License-Identifier: MIT

package ordering_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcurrent/builder"
	"github.com/katalvlaran/lvcurrent/core"
	"github.com/katalvlaran/lvcurrent/ordering"
)

func shuffledPath(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	chain := []string{"c", "a", "e", "b", "d"}
	for i := 1; i < len(chain); i++ {
		_, err := g.AddEdge(chain[i-1], chain[i], 0)
		require.NoError(t, err)
	}

	return g
}

func TestReverseCuthillMcKee_Path(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(5))
	require.NoError(t, err)
	ord, err := ordering.ReverseCuthillMcKee(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "3", "4"}, ord.Perm)
}

func TestReverseCuthillMcKee_Star(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Star(5))
	require.NoError(t, err)
	ord, err := ordering.ReverseCuthillMcKee(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"4", "3", "1", "0", "2"}, ord.Perm)
	assert.Equal(t, 3, ord.Index["0"])
}

func TestReverseCuthillMcKee_ReducesBandwidth(t *testing.T) {
	g := shuffledPath(t)
	id, err := ordering.Identity(g)
	require.NoError(t, err)
	before, err := ordering.Bandwidth(g, id)
	require.NoError(t, err)
	assert.Equal(t, 4, before)

	rcm, err := ordering.ReverseCuthillMcKee(g)
	require.NoError(t, err)
	after, err := ordering.Bandwidth(g, rcm)
	require.NoError(t, err)
	assert.Equal(t, 1, after)
}

func TestReverseCuthillMcKee_IsPermutation(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(7)}, builder.RandomSparse(40, 0.08))
	require.NoError(t, err)
	ord, err := ordering.ReverseCuthillMcKee(g)
	require.NoError(t, err)
	require.NoError(t, ord.Validate(g))
	for i, id := range ord.Perm {
		assert.Equal(t, i, ord.Index[id])
	}

	again, err := ordering.ReverseCuthillMcKee(g)
	require.NoError(t, err)
	assert.Equal(t, ord.Perm, again.Perm, "ordering must be deterministic")
}

func TestReverseCuthillMcKee_Disconnected(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("x", "y", 0)
	_, _ = g.AddEdge("a", "b", 0)
	_, _ = g.AddEdge("b", "c", 0)
	require.NoError(t, g.AddVertex("lonely"))

	ord, err := ordering.CuthillMcKee(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a", "lonely", "y", "x"}, ord.Perm)
}

func TestReverseCuthillMcKee_Errors(t *testing.T) {
	_, err := ordering.ReverseCuthillMcKee(nil)
	assert.ErrorIs(t, err, ordering.ErrGraphNil)

	d := core.NewGraph(core.WithDirected(true))
	_, _ = d.AddEdge("a", "b", 0)
	_, err = ordering.ReverseCuthillMcKee(d)
	assert.ErrorIs(t, err, ordering.ErrDirected)
}

func TestRelabel(t *testing.T) {
	g := shuffledPath(t)
	ord, err := ordering.ReverseCuthillMcKee(g)
	require.NoError(t, err)
	h, err := ordering.Relabel(g, ord)
	require.NoError(t, err)
	assert.Equal(t, g.EdgeCount(), h.EdgeCount())
	for i := 1; i < 5; i++ {
		assert.True(t, h.HasEdge(itoa(i-1), itoa(i)))
	}

	_, err = ordering.Relabel(g, ordering.Ordering{Perm: []string{"a"}})
	assert.ErrorIs(t, err, ordering.ErrMismatch)
	_, err = ordering.FromPerm([]string{"a", "a"})
	assert.ErrorIs(t, err, ordering.ErrMismatch)
}

func itoa(i int) string { return string(rune('0' + i)) }
