package digraph_test

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/digraph"
)

// ExampleDigraph builds a small diamond graph and walks one adjacency list.
func ExampleDigraph() {
	g, _ := digraph.New(4)
	_ = g.AddArc(0, 1, 1)
	_ = g.AddArc(0, 2, 4)
	_ = g.AddArc(1, 3, 2)
	_ = g.AddArc(2, 3, 1)

	for _, a := range g.ArcsFrom(0) {
		fmt.Printf("%d -> %d (w=%d)\n", a.From, a.To, a.Weight)
	}
	fmt.Println("vertices:", g.VertexCount(), "arcs:", g.ArcCount())
	// Output:
	// 0 -> 1 (w=1)
	// 0 -> 2 (w=4)
	// vertices: 4 arcs: 4
}
