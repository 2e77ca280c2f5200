// Package lvlpath computes single-source shortest paths on directed,
// integer-weighted graphs using Levit's algorithm (the D'Esopo–Pape
// label-correcting method).
//
// 🚀 What is lvlpath?
//
//	A small, focused library built around one algorithm done properly:
//		• digraph/ — dense, index-addressed directed weighted graphs
//		• levit/   — the worklist solver: two FIFO queues with urgent-over-main
//		  priority injection, correct under negative arc weights (no negative cycles)
//		• matfile/ — adjacency-matrix text format reader
//		• cmd/lvlpath — an interactive console front-end
//
// ✨ Why Levit?
//
//   - Handles negative arc weights, which Dijkstra cannot
//   - In practice converges far faster than plain FIFO label-correction
//     (Bellman–Ford/SPFA), because corrected vertices jump the queue
//   - Deterministic: same graph, same insertion order, same start ⇒ same table
//
// Quick ASCII example:
//
//	    0 ──1──▶ 1
//	    │        │
//	    4        2
//	    ▼        ▼
//	    2 ──1──▶ 3
//
//	solving from 0 yields distances [0, 1, 4, 3].
//
// Dive into the per-package docs for the full API, error contracts, and the
// negative-cycle caveat.
//
//	go get github.com/katalvlaran/lvlpath
package lvlpath
