// Package levit implements Levit's shortest-path algorithm (the
// D'Esopo–Pape label-correcting method) on directed integer-weighted
// graphs, including graphs with negative arc weights.
//
// Levit classifies every vertex into one of four states — never touched,
// waiting in the main queue, waiting in the urgent queue, or settled — and
// always serves the urgent queue first. A settled vertex whose distance
// improves is pulled back through the urgent queue ahead of all first-time
// work, which propagates corrections quickly and is what separates Levit
// from plain FIFO label-correction (SPFA).
//
// Complexity:
//
//   - Worst case exponential in theory, near-linear on typical inputs.
//   - Space: O(V + E).
//
// Caveat: with a negative-weight cycle reachable from the source the
// baseline algorithm never terminates; see WithMaxRelaxations.
package levit

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/digraph"
)

// vertexState is the solver-local scheduling classification. Every vertex
// is in exactly one state at any instant of a solve.
type vertexState uint8

const (
	stateUnvisited    vertexState = iota // never relaxed into, never queued
	stateQueuedMain                      // waiting for its first processing pass
	stateQueuedUrgent                    // settled once, improved, must be redone first
	stateSettled                         // outgoing arcs relaxed, not currently queued
)

// Levit computes shortest-path distances from source to every vertex of g,
// applying any number of functional Options.
//
// Returns:
//
//   - res: Dist for all vertices (Inf where unreachable) and, under
//     WithReturnPath, predecessor links for path reconstruction.
//   - err: ErrGraphNil or ErrSourceOutOfRange for invalid input,
//     ErrOptionViolation for a bad option, or ErrNegativeCycle if the
//     WithMaxRelaxations cutoff fires. For well-formed input with no
//     cutoff configured the solve itself never fails — but it will not
//     terminate if a negative-weight cycle is reachable from source.
//
// The graph is strictly read-only during the solve and all scheduling
// state is owned by this one call, so concurrent solves over a shared
// Digraph are independent.
func Levit(g *digraph.Digraph, source int, opts ...Option) (*Result, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: %d, want [0,%d)", ErrSourceOutOfRange, source, n)
	}

	r := newRunner(g, o, n)
	r.init(source)
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result{Dist: r.dist, Prev: r.prev}, nil
}

// runner owns all mutable state of a single solve.
type runner struct {
	g      *digraph.Digraph
	opts   Options
	dist   []int64       // dist[v] = best known distance, Inf if none
	prev   []int         // predecessor links, nil unless ReturnPath
	state  []vertexState // scheduling classification per vertex
	main   fifo          // vertices awaiting their first pass
	urgent fifo          // settled vertices that must be reprocessed first
	steps  int           // arc relaxations examined so far
}

func newRunner(g *digraph.Digraph, o Options, n int) *runner {
	r := &runner{
		g:     g,
		opts:  o,
		dist:  make([]int64, n),
		state: make([]vertexState, n), // zero value == stateUnvisited
	}
	for v := range r.dist {
		r.dist[v] = Inf
	}
	if o.ReturnPath {
		r.prev = make([]int, n)
		for v := range r.prev {
			r.prev[v] = -1
		}
	}

	return r
}

// init seeds the solve: source at distance 0, queued in the main queue,
// everything else Unvisited at Inf.
func (r *runner) init(source int) {
	r.dist[source] = 0
	r.state[source] = stateQueuedMain
	r.main.push(source)
}

// process drains both queues, always serving the urgent queue first. On
// return every vertex is either Settled (distance final) or Unvisited
// (unreachable, distance Inf).
func (r *runner) process() error {
	for {
		var u int
		var urgent bool
		switch {
		case r.urgent.len() > 0:
			u, urgent = r.urgent.pop(), true
		case r.main.len() > 0:
			u = r.main.pop()
		default:
			return nil // both queues empty: terminal condition
		}
		r.opts.OnDequeue(u, urgent)

		if err := r.relax(u); err != nil {
			return err
		}
		r.state[u] = stateSettled
	}
}

// relax examines each outgoing arc (u, v, w) and, on improvement, updates
// dist[v] and applies the state transition dictated by v's current state:
// Unvisited joins the main queue, Settled is re-injected through the urgent
// queue, and already-queued vertices keep their queue slot (their stored
// distance is simply better now).
func (r *runner) relax(u int) error {
	du := r.dist[u]
	for _, a := range r.g.ArcsFrom(u) {
		if r.opts.MaxRelaxations > 0 {
			r.steps++
			if r.steps > r.opts.MaxRelaxations {
				return fmt.Errorf("%w: cutoff after %d relaxations", ErrNegativeCycle, r.opts.MaxRelaxations)
			}
		}

		candidate := du + a.Weight
		if candidate >= r.dist[a.To] {
			continue
		}
		r.dist[a.To] = candidate
		if r.prev != nil {
			r.prev[a.To] = u
		}

		switch r.state[a.To] {
		case stateUnvisited:
			r.state[a.To] = stateQueuedMain
			r.main.push(a.To)
		case stateSettled:
			r.state[a.To] = stateQueuedUrgent
			r.urgent.push(a.To)
			r.opts.OnRequeue(a.To)
		case stateQueuedMain, stateQueuedUrgent:
			// already pending; the improved distance travels with it
		}
	}

	return nil
}

// fifo is a plain first-in-first-out queue of vertex indices. The head
// index advances instead of re-slicing so pops never shift memory.
type fifo struct {
	items []int
	head  int
}

func (q *fifo) len() int { return len(q.items) - q.head }

func (q *fifo) push(v int) { q.items = append(q.items, v) }

func (q *fifo) pop() int {
	v := q.items[q.head]
	q.head++
	if q.head == len(q.items) {
		// queue drained; reuse the buffer from the start
		q.items = q.items[:0]
		q.head = 0
	}

	return v
}
