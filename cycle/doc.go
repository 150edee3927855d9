// Package cycle detects reachable cycles in implicitly-defined graphs.
// It is a thin consumer of the walker engine: Detect runs a post-order
// walk with a specialized admission tracker and stops at the first cycle
// it can confirm.
//
// What
//
//   - Detect(next, starts...): walks the graph observed through the
//     successor function and reports the first reachable cyclic path.
//   - The returned path runs from the first still-open ancestor through
//     the cycle and ends by repeating the node that closes it: for nodes
//     A and B forming a cycle, the path is [A B A].
//   - Exactly one cycle is ever reported, even when several are reachable;
//     detection short-circuits as soon as the first one is confirmed.
//
// How
//
//	The tracker keeps two sets: seen (every node ever admitted, always a
//	superset) and the ordered current path of open ancestors, mirroring
//	the depth-first stack. A candidate already on the current path closes
//	a cycle; a candidate merely seen before is a cross edge into an
//	already-explored region and is ignored. Post-order emission is the
//	backtrack signal: each emitted node is removed from the current path,
//	and the first node emitted after a cycle was recorded pins down where
//	the cyclic path ends.
//
// Complexity (P = cyclic path length, V = nodes visited, E = edges examined)
//
//   - Time:   O(E) until the first cycle is confirmed, or the whole
//     reachable graph when it is acyclic and finite.
//   - Memory: O(P + V).
//
// Detect does not terminate when the reachable graph is infinite and
// acyclic (the natural numbers, for instance). This is a documented
// limitation, not an error; bound the graph before asking.
//
// Errors
//
//   - walker.ErrNilSuccessorFunc  if no successor function is given.
//   - walker.ErrNilStartNode      if any start node is nil.
package cycle
