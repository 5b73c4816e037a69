package bfs_test

import (
	"testing"

	"github.com/katalvlaran/snakesladders/bfs"
	"github.com/katalvlaran/snakesladders/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g := chain(b, N)

	b.ReportAllocs()
	b.SetBytes(int64(2*N + 1))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkBFS_DiceGraph runs BFS on the plain 1..100 board with six forward edges per square.
func BenchmarkBFS_DiceGraph(b *testing.B) {
	g := core.NewGraph()
	for v := 1; v < 100; v++ {
		for d := 1; d <= 6 && v+d <= 100; d++ {
			_ = g.AddEdge(v, v+d)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 1, bfs.WithTarget(100))
	}
}
