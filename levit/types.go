// Package levit: configuration options, sentinel errors, and result types
// for the Levit / D'Esopo–Pape shortest-path solver.
package levit

import (
	"errors"
	"fmt"
	"math"
)

// Inf is the sentinel distance meaning "no path found". Every vertex the
// solve never reaches keeps this value in Result.Dist.
const Inf int64 = math.MaxInt64

// Sentinel errors for Levit execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("levit: graph is nil")

	// ErrSourceOutOfRange is returned when the source vertex index is
	// outside [0, VertexCount).
	ErrSourceOutOfRange = errors.New("levit: source vertex out of range")

	// ErrNegativeCycle is returned when the relaxation cutoff set by
	// WithMaxRelaxations is exceeded, which on a well-formed run can only
	// happen if a negative-weight cycle is reachable from the source.
	ErrNegativeCycle = errors.New("levit: negative-weight cycle suspected")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("levit: invalid option supplied")

	// ErrNoPath is returned by Result.PathTo when dest is unreachable.
	ErrNoPath = errors.New("levit: no path to destination")

	// ErrPathNotRecorded is returned by Result.PathTo when the solve ran
	// without WithReturnPath, so no predecessor links exist.
	ErrPathNotRecorded = errors.New("levit: predecessors not recorded; solve with WithReturnPath")
)

// Option configures Levit behavior via functional arguments. An invalid
// Option (e.g. a negative cutoff) is recorded internally and surfaced as
// ErrOptionViolation when Levit is invoked.
type Option func(*Options)

// Options holds parameters and callbacks customizing a single solve.
type Options struct {
	// ReturnPath, if true, records predecessor links so Result.PathTo can
	// reconstruct shortest paths. Off by default to keep solves lean.
	ReturnPath bool

	// MaxRelaxations, if > 0, caps the total number of arc relaxations
	// examined across the whole solve; exceeding it aborts with
	// ErrNegativeCycle. 0 disables the cutoff (the unguarded baseline,
	// which never terminates on a reachable negative cycle).
	MaxRelaxations int

	// OnDequeue is called when a vertex is pulled for processing;
	// urgent reports which queue it came from.
	OnDequeue func(v int, urgent bool)

	// OnRequeue is called when a settled vertex's distance improves and it
	// re-enters the urgent queue (the priority injection step).
	OnRequeue func(v int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - no predecessor recording
//   - no relaxation cutoff (baseline behavior)
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		ReturnPath:     false,
		MaxRelaxations: 0,
		OnDequeue:      func(int, bool) {},
		OnRequeue:      func(int) {},
	}
}

// WithReturnPath enables predecessor recording in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxRelaxations caps total arc relaxations at n.
//
//	n > 0:  abort with ErrNegativeCycle after n relaxations
//	n == 0: explicit no cutoff
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxRelaxations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxRelaxations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxRelaxations = n
	}
}

// WithOnDequeue registers a callback to run each time a vertex is dequeued.
func WithOnDequeue(fn func(v int, urgent bool)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnRequeue registers a callback to run each time a settled vertex is
// re-queued through the urgent queue.
func WithOnRequeue(fn func(v int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRequeue = fn
		}
	}
}

// Result holds the outcome of one solve.
//
//   - Dist has exactly VertexCount entries: Dist[v] is the shortest-path
//     distance from the source to v, or Inf if v is unreachable.
//   - Prev has predecessor links when the solve used WithReturnPath
//     (Prev[v] == -1 for the source and for unreachable vertices), and is
//     nil otherwise.
type Result struct {
	Dist []int64
	Prev []int
}

// PathTo reconstructs the source→dest path from the predecessor links.
// Returns ErrPathNotRecorded if the solve did not use WithReturnPath,
// ErrNoPath if dest is out of range or unreachable.
func (r *Result) PathTo(dest int) ([]int, error) {
	if r.Prev == nil {
		return nil, ErrPathNotRecorded
	}
	if dest < 0 || dest >= len(r.Dist) || r.Dist[dest] == Inf {
		return nil, fmt.Errorf("%w: vertex %d", ErrNoPath, dest)
	}

	// build reversed path by walking predecessor links
	path := []int{}
	for cur := dest; cur != -1; cur = r.Prev[cur] {
		path = append(path, cur)
	}
	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
