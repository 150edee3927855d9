// Package walker provides the traversal engine: a Walker built from a
// successor function and an admission Tracker, producing lazy pre-order,
// post-order and breadth-first node sequences over implicit graphs.
package walker

import (
	"fmt"
	"iter"
	"slices"
)

// Walker pairs a SuccessorFunc with a Tracker factory. It carries no
// per-traversal state itself: every traversal entry point spins up a fresh
// traversal, so one Walker may serve many invocations, concurrently if the
// underlying Tracker permits it.
type Walker[N any] struct {
	next       SuccessorFunc[N]
	newTracker func() Tracker[N]
}

// InTree returns a Walker for tree-shaped input: every candidate is
// admitted, nothing is remembered. This is the cheapest mode, but it is
// correct only when no node is reachable via two distinct paths — on an
// actual cycle the traversal never terminates.
//
// To guard against unexpected cycles, pair InGraphTracked with a tracker
// that fails loudly on a repeated sighting instead.
func InTree[N any](next SuccessorFunc[N]) (*Walker[N], error) {
	if next == nil {
		return nil, ErrNilSuccessorFunc
	}
	admitAll := TrackerFunc[N](func(N) bool { return true })

	return &Walker[N]{
		next:       next,
		newTracker: func() Tracker[N] { return admitAll },
	}, nil
}

// InGraph returns a Walker for general graphs, possibly cyclic. Each
// traversal invocation gets its own fresh membership set, so every
// reachable node is admitted at most once per invocation and cycles are
// never walked twice. Memory is linear in the number of distinct nodes
// admitted.
func InGraph[N comparable](next SuccessorFunc[N]) (*Walker[N], error) {
	if next == nil {
		return nil, ErrNilSuccessorFunc
	}

	return &Walker[N]{
		next:       next,
		newTracker: func() Tracker[N] { return NewSetTracker[N]() },
	}, nil
}

// InGraphTracked returns a Walker using the caller-supplied tracker for
// every traversal invocation. The one tracker instance is shared across
// invocations, which enables custom node equivalence, bounded-memory
// probabilistic membership, or collaborative concurrent exploration
// (see SyncSetTracker) — at the price of the tracker itself having to be
// concurrency-safe when traversals overlap.
func InGraphTracked[N any](next SuccessorFunc[N], tracker Tracker[N]) (*Walker[N], error) {
	if next == nil {
		return nil, ErrNilSuccessorFunc
	}
	if tracker == nil {
		return nil, ErrNilTracker
	}

	return &Walker[N]{
		next:       next,
		newTracker: func() Tracker[N] { return tracker },
	}, nil
}

// PreOrder walks depth-first from starts, emitting each admitted node
// before any of its descendants. Start nodes are explored in the given
// order; the first start's reachable subgraph is exhausted before the
// second start is touched.
//
// The returned sequence is lazy, single-use and possibly infinite; breaking
// out of the range loop stops all further discovery.
func (w *Walker[N]) PreOrder(starts ...N) (iter.Seq[N], error) {
	t, err := w.newTraversal(starts)
	if err != nil {
		return nil, err
	}

	return t.topDown((*frontier[N]).pushFront), nil
}

// PostOrder walks depth-first from starts, emitting each admitted node
// only after all of its descendants. Beware that unlike PreOrder, a node
// of infinite depth can never finish expanding, so its ancestors are never
// emitted.
//
// The returned sequence is lazy, single-use and possibly infinite; breaking
// out of the range loop stops all further discovery.
func (w *Walker[N]) PostOrder(starts ...N) (iter.Seq[N], error) {
	t, err := w.newTraversal(starts)
	if err != nil {
		return nil, err
	}

	return t.bottomUp(), nil
}

// BreadthFirst walks from starts in strict level order: all nodes at
// depth d are emitted before any node at depth d+1, and the start nodes
// themselves form depth 0 in the given order.
//
// The returned sequence is lazy, single-use and possibly infinite; breaking
// out of the range loop stops all further discovery.
func (w *Walker[N]) BreadthFirst(starts ...N) (iter.Seq[N], error) {
	t, err := w.newTraversal(starts)
	if err != nil {
		return nil, err
	}

	return t.topDown((*frontier[N]).pushBack), nil
}

// traversal holds the state of one traversal invocation: the frontier of
// pending sibling cursors plus the Tracker gating every candidate.
type traversal[N any] struct {
	next     SuccessorFunc[N]
	tracker  Tracker[N]
	horizon  frontier[N]
	starts   []N
	nilable  bool
	consumed bool
}

// newTraversal validates starts and prepares fresh per-invocation state.
func (w *Walker[N]) newTraversal(starts []N) (*traversal[N], error) {
	t := &traversal[N]{
		next:    w.next,
		tracker: w.newTracker(),
		starts:  starts,
		nilable: nilable[N](),
	}

	// 1. Every start node must be present; this fails before any traversal work.
	if t.nilable {
		for i, s := range starts {
			if isNil(s) {
				return nil, fmt.Errorf("%w: index %d", ErrNilStartNode, i)
			}
		}
	}

	return t, nil
}

// begin seeds the frontier with the start-node cursor and guards against
// a sequence being consumed twice.
func (t *traversal[N]) begin() {
	if t.consumed {
		panic("walker: traversal sequence consumed more than once")
	}
	t.consumed = true
	t.horizon.pushFront(newCursor(slices.Values(t.starts)))
}

// topDown is the shared stepping loop for the two node-before-children
// orders. insert is the order-specific rule: pushFront yields pre-order
// (most recently discovered children explored first), pushBack yields
// breadth-first (whole current depth drained before the next).
func (t *traversal[N]) topDown(insert func(*frontier[N], *cursor[N])) iter.Seq[N] {
	return func(yield func(N) bool) {
		t.begin()
		defer t.horizon.release()

		for !t.horizon.empty() {
			// 1. Advance the first frontier entry to its next admitted node;
			//    an exhausted entry is dropped and the loop retries the next one.
			node, ok := t.visitNext()
			if !ok {
				continue
			}

			// 2. Queue the node's successors per the insertion rule.
			if succ := t.next(node); succ != nil {
				insert(&t.horizon, newCursor(succ))
			}

			// 3. Emit the node itself, before any of its children.
			if !yield(node) {
				return
			}
		}
	}
}

// bottomUp is the post-order stepping loop. A node cannot be emitted on
// first visit — its descendants must come first — so admitted non-leaf
// nodes are parked on the roots stack, one entry per open ancestor, and an
// ancestor is popped exactly when its sibling cursor on the frontier
// empties. The two stacks shrink and grow in lockstep; only the bottom
// start-node cursor has no ancestor attached.
func (t *traversal[N]) bottomUp() iter.Seq[N] {
	return func(yield func(N) bool) {
		t.begin()
		defer t.horizon.release()

		var roots []N // open ancestors awaiting emission
		for !t.horizon.empty() {
			node, ok := t.visitNext()
			if !ok {
				// 1. The front sibling group is exhausted: the subtree of the
				//    ancestor that opened it is complete, so emit that ancestor.
				if len(roots) == 0 {
					continue // the start-node group owns no ancestor
				}
				root := roots[len(roots)-1]
				roots = roots[:len(roots)-1]
				if !yield(root) {
					return
				}

				continue
			}

			// 2. Leaf fast-path: with no successors at all, nothing has to
			//    precede the node, so it is emitted immediately.
			succ := t.next(node)
			if succ == nil {
				if !yield(node) {
					return
				}

				continue
			}

			// 3. Open the node as an ancestor: descend into its successors
			//    without emitting it yet.
			t.horizon.pushFront(newCursor(succ))
			roots = append(roots, node)
		}
	}
}

// visitNext drains the first frontier entry one candidate at a time until
// the Tracker admits one, and returns it. When the entry runs out it is
// removed and visitNext reports false; the caller retries against the new
// first entry.
func (t *traversal[N]) visitNext() (N, bool) {
	top := t.horizon.first()
	for {
		node, ok := top.next()
		if !ok {
			break
		}
		if t.nilable && isNil(node) {
			panic("walker: successor sequence produced a nil node")
		}
		if t.tracker.Admit(node) {
			return node, true
		}
	}
	top.stop()
	t.horizon.dropFirst()

	var zero N

	return zero, false
}
