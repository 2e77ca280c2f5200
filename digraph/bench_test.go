package digraph_test

import (
	"testing"

	"github.com/katalvlaran/lvlpath/digraph"
)

// BenchmarkAddArc measures append-only construction of a dense-ish graph.
func BenchmarkAddArc(b *testing.B) {
	const V = 1000

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		g, _ := digraph.New(V)
		for v := 0; v < V; v++ {
			_ = g.AddArc(v, (v+1)%V, 1)
			_ = g.AddArc(v, (v+7)%V, 3)
		}
	}
}

// BenchmarkArcsFrom measures adjacency iteration on a prebuilt graph.
func BenchmarkArcsFrom(b *testing.B) {
	const V = 1000
	g, _ := digraph.New(V)
	for v := 0; v < V; v++ {
		_ = g.AddArc(v, (v+1)%V, 1)
		_ = g.AddArc(v, (v+7)%V, 3)
	}

	b.ReportAllocs()
	b.SetBytes(int64(V + g.ArcCount()))
	b.ResetTimer()

	var sink int64
	for i := 0; i < b.N; i++ {
		for v := 0; v < V; v++ {
			for _, a := range g.ArcsFrom(v) {
				sink += a.Weight
			}
		}
	}
	_ = sink
}
