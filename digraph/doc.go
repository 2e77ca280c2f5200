// Package digraph provides a dense, index-addressed directed weighted graph.
//
// Overview:
//
//   - Vertices are plain integers in [0, n); n is fixed at construction.
//   - Arcs are directed (from, to, weight) triples with signed 64-bit
//     weights; negative weights are legal.
//   - The structure is append-only: arcs may be added any number of times
//     (parallel arcs between the same endpoints are kept, not deduplicated),
//     but existing arcs never mutate and the vertex count never changes.
//
// This shape is deliberately minimal. It stores adjacency and nothing else:
// no traversal, no shortest paths, no algorithmic state. Solvers (see the
// levit package) treat a Digraph as read-only input and keep all of their
// working state on their side.
//
// Complexity:
//
//   - AddArc:      amortized O(1)
//   - ArcsFrom:    O(1) (returns the backing slice, no copy)
//   - VertexCount: O(1)
//   - Space:       O(V + E)
//
// Error handling (sentinel errors, matched via errors.Is):
//
//   - ErrNegativeVertexCount: New was given a vertexCount < 0.
//   - ErrVertexOutOfRange:    AddArc referenced an endpoint outside [0, n).
//
// Thread safety:
//
//   - A Digraph is safe for concurrent readers once construction is done.
//     Construction (New + AddArc calls) must be single-threaded or
//     externally synchronized.
package digraph
