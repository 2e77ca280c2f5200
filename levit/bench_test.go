package levit_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlpath/digraph"
	"github.com/katalvlaran/lvlpath/levit"
)

// BenchmarkLevit_Chain measures a solve on a linear chain of N+1 vertices.
func BenchmarkLevit_Chain(b *testing.B) {
	const N = 10000
	g, _ := digraph.New(N + 1)
	for i := 0; i < N; i++ {
		_ = g.AddArc(i, i+1, 1)
	}

	b.ReportAllocs()
	b.SetBytes(int64(g.VertexCount() + g.ArcCount()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = levit.Levit(g, 0)
	}
}

// BenchmarkLevit_Grid measures a solve on an M×M grid with unit weights.
func BenchmarkLevit_Grid(b *testing.B) {
	const M = 100
	g, _ := digraph.New(M * M)
	for i := 0; i < M; i++ {
		for j := 0; j < M; j++ {
			v := i*M + j
			if j+1 < M {
				_ = g.AddArc(v, v+1, 1)
			}
			if i+1 < M {
				_ = g.AddArc(v, v+M, 1)
			}
		}
	}

	b.ReportAllocs()
	b.SetBytes(int64(g.VertexCount() + g.ArcCount()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = levit.Levit(g, 0)
	}
}

// BenchmarkLevit_RandomSparse measures a solve on a sparse random graph
// with mixed-sign weights arranged so no negative cycle can form.
func BenchmarkLevit_RandomSparse(b *testing.B) {
	const V = 5000
	const E = 20000

	rnd := rand.New(rand.NewSource(42))
	g, _ := digraph.New(V)
	for k := 0; k < E; k++ {
		u := rnd.Intn(V - 1)
		v := u + 1 + rnd.Intn(V-u-1) // forward arcs only: cycle-free
		_ = g.AddArc(u, v, int64(rnd.Intn(40)-5))
	}

	b.ReportAllocs()
	b.SetBytes(int64(V + E))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = levit.Levit(g, 0)
	}
}

// BenchmarkLevit_ReturnPathOverhead compares solves with and without
// predecessor recording.
func BenchmarkLevit_ReturnPathOverhead(b *testing.B) {
	const N = 2000
	g, _ := digraph.New(N + 1)
	for i := 0; i < N; i++ {
		_ = g.AddArc(i, i+1, 1)
	}

	b.Run("DistOnly", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = levit.Levit(g, 0)
		}
	})

	b.Run("WithPath", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = levit.Levit(g, 0, levit.WithReturnPath())
		}
	})
}
