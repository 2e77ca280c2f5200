// Package levit provides a precise implementation of Levit's shortest-path
// algorithm (also known as the D'Esopo–Pape method) on directed graphs with
// signed integer arc weights.
//
// Overview:
//
//   - Levit computes single-source shortest-path distances on graphs that
//     may contain negative arc weights, as long as no negative-weight cycle
//     is reachable from the source.
//   - It is a label-correcting method: a vertex's distance may be revised
//     after the vertex was first processed. What distinguishes Levit from
//     plain FIFO label-correction (Bellman–Ford/SPFA) is its scheduling
//     discipline.
//
// The scheduling discipline:
//
//   - Every vertex is in exactly one of four states during a solve:
//     Unvisited (never touched), queued in the MAIN queue (awaiting its
//     first pass), queued in the URGENT queue (was settled, then improved),
//     or Settled (processed, not currently queued).
//   - Each iteration serves the urgent queue if it is non-empty, otherwise
//     the main queue. Re-opened vertices therefore overtake all first-time
//     work — corrections propagate before fresh exploration continues,
//     which is where the method's practical speed comes from.
//   - Both queues are strict FIFO and hold at most one pending occurrence
//     of a vertex; an improvement to an already-queued vertex only rewrites
//     its stored distance.
//
// Determinism:
//
//   - For a fixed graph, fixed arc-insertion order, and fixed source the
//     solve is fully deterministic: same distance table, same hook
//     sequence, every time.
//
// Error handling (sentinel errors, matched via errors.Is):
//
//   - ErrGraphNil:          nil *digraph.Digraph passed to Levit.
//   - ErrSourceOutOfRange:  source index outside [0, VertexCount).
//   - ErrOptionViolation:   invalid Option value (e.g. negative cutoff).
//   - ErrNegativeCycle:     the WithMaxRelaxations cutoff was exceeded.
//   - ErrNoPath:            Result.PathTo on an unreachable destination.
//   - ErrPathNotRecorded:   Result.PathTo without WithReturnPath.
//
// The negative-cycle caveat:
//
//   - The baseline algorithm has no termination guarantee when a
//     negative-weight cycle is reachable from the source: vertices on the
//     cycle keep re-entering the urgent queue. The solver does not try to
//     detect this; it is the documented contract of the method.
//   - WithMaxRelaxations(n) is the opt-in guard: it caps total arc
//     relaxations and aborts with ErrNegativeCycle past the cap. The cap
//     is a heuristic, hence "suspected" in the error message: the method's
//     theoretical worst case is exponential even without negative cycles,
//     but on real inputs a budget of (V+1)·E — the Bellman–Ford bound —
//     is exceeded only when a negative cycle keeps feeding the urgent
//     queue.
//
// API reference:
//
//	func Levit(g *digraph.Digraph, source int, opts ...Option) (*Result, error)
//
//	  - g:      pointer to a digraph.Digraph; read-only during the solve.
//	  - source: 0-indexed start vertex.
//	  - opts:   zero or more functional options:
//	      • WithReturnPath():        record predecessor links for Result.PathTo.
//	      • WithMaxRelaxations(n):   abort with ErrNegativeCycle after n relaxations.
//	      • WithOnDequeue(fn):       observe each dequeue (vertex, which queue).
//	      • WithOnRequeue(fn):       observe each Settled→urgent re-injection.
//	  - Result.Dist[v]: shortest distance from source to v, or Inf.
//	  - Result.Prev[v]: predecessor of v (-1 for source/unreachable), nil
//	    when ReturnPath is off.
//
// Thread safety:
//
//   - Each call allocates its own scheduling state, so concurrent solves
//     over one constructed Digraph are safe. Do not mutate the graph while
//     any solve is running.
//
// See also:
//
//   - digraph: the adjacency structure consumed here.
//   - matfile: reading a graph from adjacency-matrix text.
package levit
