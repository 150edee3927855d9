// Package graphwalk is a lazy traversal toolkit for implicitly-defined
// graphs: graphs whose edges are discovered on demand through a
// caller-supplied successor function, never materialized up front.
//
// 🚀 What is graphwalk?
//
//	A small, dependency-free library that brings together:
//		• Walker: pre-order, post-order and breadth-first node sequences,
//		  produced lazily so infinite graphs stay explorable
//		• Trackers: pluggable visit-admission policies (tree, set-backed,
//		  concurrency-safe, or fully custom)
//		• Cycle: first-cycle detection built on top of post-order walking
//
// ✨ Why choose graphwalk?
//
//   - Demand-driven – one unit of discovery per element you consume;
//     stop ranging and all further work stops with you
//   - Structure-free – no graph type to build; any successor function
//     (adjacency map, filesystem children, dependency edges) will do
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – swap in your own Tracker for custom equivalence,
//     shared concurrent exploration, or probabilistic membership
//
// Everything is organized under two subpackages:
//
//	walker/ — the traversal engine, frontier and admission trackers
//	cycle/  — reachable-cycle detection with cyclic-path reporting
//
// Quick ASCII example:
//
//	    A──▶B──▶D
//	    │
//	    └──▶C
//
//	pre-order from A yields A B D C; post-order D B C A;
//	breadth-first A B C D.
//
// Dive into README.md and the examples/ directory for full scenarios,
// from dependency ordering to bounded exploration of infinite graphs.
//
//	go get github.com/katalvlaran/graphwalk
package graphwalk
