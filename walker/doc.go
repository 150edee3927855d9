// Package walker implements generic lazy traversal (pre-order, post-order,
// breadth-first) over graphs defined implicitly by a successor function.
// Sequences are produced element by element, so graphs of unbounded size —
// including infinite ones — can be explored with bounded memory and
// short-circuited consumption.
//
// What
//
//   - Walker pairs a SuccessorFunc with a visit-admission Tracker and exposes
//     three traversal operations, each returning a lazy iter.Seq:
//   - PreOrder: depth-first, node before its descendants
//   - PostOrder: depth-first, node after all its descendants
//   - BreadthFirst: strict level order, depth d before depth d+1
//   - Three construction modes:
//   - InTree: no tracking; fastest, but loops forever on cyclic input
//   - InGraph: a fresh membership set per traversal; each node at most once
//   - InGraphTracked: caller-supplied Tracker for custom equivalence,
//     shared concurrent exploration, or probabilistic membership
//   - Built-in trackers: NewSetTracker (map-backed), NewSyncSetTracker
//     (safe to share across goroutines), and the TrackerFunc adapter.
//
// Why
//
//   - Explore graphs that are too large, too expensive, or impossible to
//     materialize: crawl frontiers, dependency edges, filesystem trees,
//     generated state spaces.
//   - Consume exactly as much of the graph as you need: breaking out of the
//     range loop halts all further discovery, with no cleanup required.
//
// Laziness
//
//	Each element demanded by the consumer triggers exactly the minimal
//	discovery work needed to produce it. The engine never looks ahead:
//	the successor function is invoked only for nodes actually admitted
//	and emitted. Returned sequences are single-use and forward-only.
//
// Concurrency
//
//	A single returned sequence must not be consumed from multiple
//	goroutines. A Walker itself is reusable: independent traversals may
//	run concurrently on separate goroutines provided the Tracker supplied
//	via InGraphTracked is itself concurrency-safe (NewSyncSetTracker is).
//
// Complexity (V = nodes admitted, E = edges examined, D = traversal depth)
//
//   - Time:   O(V + E) for a full traversal; proportional to elements
//     consumed when short-circuited.
//   - Memory: O(D) frontier entries for depth-first orders (plus O(D)
//     pending ancestors in post-order), O(frontier width) for
//     breadth-first, plus whatever the Tracker retains.
//
// Errors
//
//   - ErrNilSuccessorFunc  if construction is attempted without a successor function.
//   - ErrNilTracker        if InGraphTracked is given a nil Tracker.
//   - ErrNilStartNode      if any start node passed to a traversal is nil.
//
// A nil node produced by a successor sequence mid-traversal panics at the
// point it would be admitted; a nil successor *sequence* is not an error and
// simply means "no successors".
package walker
