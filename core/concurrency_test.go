// SPDX-License-Identifier: MIT

package core_test

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcurrent/core"
)

// TestConcurrentReadersAndWriters exercises the lock discipline under -race.
func TestConcurrentReadersAndWriters(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	const workers = 8
	const perWorker = 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				from := strconv.Itoa(w)
				to := strconv.Itoa((w + i) % workers)
				if from == to {
					continue
				}
				_, _ = g.AddEdge(from, to, float64(i+1))
				_ = g.Vertices()
				_, _ = g.NeighborIDs(from)
				_ = g.Clone()
			}
		}(w)
	}
	wg.Wait()

	require.Equal(t, workers, g.VertexCount())
	seen := make(map[string]struct{})
	for _, e := range g.Edges() {
		_, dup := seen[e.ID]
		require.False(t, dup, "edge IDs must be unique")
		seen[e.ID] = struct{}{}
	}
}
