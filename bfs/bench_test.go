package bfs_test

import (
	"testing"

	"github.com/katalvlaran/lvcurrent/bfs"
	"github.com/katalvlaran/lvcurrent/builder"
)

func BenchmarkConnectedComponents_Grid(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(40, 40))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = bfs.ConnectedComponents(g); err != nil {
			b.Fatal(err)
		}
	}
}
