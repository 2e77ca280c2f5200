package digraph

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by graph construction.
var (
	// ErrNegativeVertexCount is returned by New when vertexCount < 0.
	ErrNegativeVertexCount = errors.New("digraph: vertex count must be non-negative")

	// ErrVertexOutOfRange is returned by AddArc when an endpoint index
	// falls outside [0, VertexCount).
	ErrVertexOutOfRange = errors.New("digraph: vertex index out of range")
)

// Arc is a directed weighted edge. Arcs are values; once appended to a
// Digraph they are never modified.
type Arc struct {
	From   int   // tail vertex, 0 ≤ From < n
	To     int   // head vertex, 0 ≤ To < n
	Weight int64 // signed; negative weights are permitted
}

// Digraph is a directed weighted graph over vertices 0..n-1 with an
// adjacency list of outgoing arcs per vertex. The zero value is an empty
// graph with no vertices; use New to size it.
type Digraph struct {
	out      [][]Arc // out[v] = outgoing arcs of v, in insertion order
	arcCount int
}

// New allocates a Digraph with vertexCount vertices and no arcs.
// Returns ErrNegativeVertexCount if vertexCount < 0.
func New(vertexCount int) (*Digraph, error) {
	if vertexCount < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeVertexCount, vertexCount)
	}

	return &Digraph{out: make([][]Arc, vertexCount)}, nil
}

// AddArc appends the arc from→to with the given weight to from's outgoing
// list. Parallel arcs are kept. Returns ErrVertexOutOfRange, naming the
// offending index, if either endpoint is outside [0, VertexCount); the
// graph is left untouched in that case.
func (g *Digraph) AddArc(from, to int, weight int64) error {
	n := len(g.out)
	if from < 0 || from >= n {
		return fmt.Errorf("%w: from=%d, want [0,%d)", ErrVertexOutOfRange, from, n)
	}
	if to < 0 || to >= n {
		return fmt.Errorf("%w: to=%d, want [0,%d)", ErrVertexOutOfRange, to, n)
	}

	g.out[from] = append(g.out[from], Arc{From: from, To: to, Weight: weight})
	g.arcCount++

	return nil
}

// ArcsFrom returns v's outgoing arcs in insertion order, or nil if v is
// outside [0, VertexCount). The returned slice is the graph's backing
// storage: callers must treat it as read-only.
func (g *Digraph) ArcsFrom(v int) []Arc {
	if v < 0 || v >= len(g.out) {
		return nil
	}

	return g.out[v]
}

// VertexCount returns the number of vertices n fixed at construction.
func (g *Digraph) VertexCount() int { return len(g.out) }

// ArcCount returns the total number of arcs added so far.
func (g *Digraph) ArcCount() int { return g.arcCount }
