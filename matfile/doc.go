// Package matfile reads directed weighted graphs from adjacency-matrix
// text, the input format of the lvlpath console tool.
//
// Format:
//
//   - One line per vertex; n lines define an n×n matrix.
//   - Tokens on a line are separated by any run of spaces, tabs, or commas;
//     every line must carry exactly n tokens.
//   - The no-arc token (default "-", configurable via WithNoArcToken) marks
//     "no arc from row vertex to column vertex"; every other token must
//     parse as a signed base-10 integer weight.
//   - Diagonal entries are ignored even when a weight is present —
//     self-loops never contribute to a shortest path and a negative one
//     would be a negative cycle.
//
// Example (4 vertices):
//
//	-  1  4  -
//	-  -  -  2
//	-  -  -  1
//	-  -  -  -
//
// Error handling (sentinel errors, matched via errors.Is, wrapped with
// row/column context at the point of detection):
//
//   - ErrEmptyInput:      the input has no lines at all.
//   - ErrMalformedRow:    a row's token count differs from the line count n.
//   - ErrTokenParse:      a non-sentinel token is not a valid integer.
//   - ErrOptionViolation: WithNoArcToken was given an unusable token.
//
// Parsing performs no recovery: the first violation aborts and propagates
// unchanged to the caller. A successfully parsed matrix always yields a
// fully constructed digraph.Digraph, ready for the levit solver.
package matfile
