package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/airgraph/bfs"
	"github.com/katalvlaran/airgraph/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain of N+1 airports.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	edges := make([]core.Edge, 0, N)
	for i := 0; i < N; i++ {
		edges = append(edges, core.Edge{From: fmt.Sprintf("v%d", i), To: fmt.Sprintf("v%d", i+1), Weight: 1})
	}
	g, err := core.FromEdges(edges)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(2*N + 1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "v0")
	}
}

// BenchmarkComponents_Random partitions a sparse random network.
func BenchmarkComponents_Random(b *testing.B) {
	g := randomGraph(b, 42, 2000, 2500)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bfs.Components(g)
	}
}
