package walker

import "iter"

// cursor is a pull-style view over one sibling group: the remaining,
// not-yet-examined members of a single node's successor sequence
// (or of the start-node list). Advancing it performs one unit of
// discovery; stop releases the underlying iterator early.
type cursor[N any] struct {
	next func() (N, bool)
	stop func()
}

// newCursor wraps seq in a cursor so the engine can advance it one
// candidate at a time.
func newCursor[N any](seq iter.Seq[N]) *cursor[N] {
	next, stop := iter.Pull(seq)

	return &cursor[N]{next: next, stop: stop}
}

// frontier is the engine's pending-expansion deque of sibling cursors.
//
// Invariants:
//   - the first entry is always the one currently being drained;
//   - an entry is removed only once fully exhausted;
//   - entries are inserted only at an end — front for the depth-first
//     orders (stack discipline), back for breadth-first (queue discipline).
//
// Backed by a ring buffer so both ends are O(1); the buffer grows on
// demand and is never shrunk within a traversal.
type frontier[N any] struct {
	buf  []*cursor[N]
	head int
	size int
}

// empty reports whether no sibling group remains pending.
func (f *frontier[N]) empty() bool { return f.size == 0 }

// first returns the entry currently being drained.
// Callers must ensure the frontier is non-empty.
func (f *frontier[N]) first() *cursor[N] { return f.buf[f.head] }

// pushFront inserts c before the current first entry (stack discipline).
func (f *frontier[N]) pushFront(c *cursor[N]) {
	f.grow()
	f.head = (f.head - 1 + len(f.buf)) % len(f.buf)
	f.buf[f.head] = c
	f.size++
}

// pushBack inserts c after the current last entry (queue discipline).
func (f *frontier[N]) pushBack(c *cursor[N]) {
	f.grow()
	f.buf[(f.head+f.size)%len(f.buf)] = c
	f.size++
}

// dropFirst removes the exhausted first entry.
// Callers must ensure the frontier is non-empty.
func (f *frontier[N]) dropFirst() {
	f.buf[f.head] = nil
	f.head = (f.head + 1) % len(f.buf)
	f.size--
}

// release stops every remaining cursor. Called when a traversal ends or
// the consumer abandons the sequence, so no successor iterator outlives it.
func (f *frontier[N]) release() {
	for !f.empty() {
		f.first().stop()
		f.dropFirst()
	}
}

// grow doubles the ring when full, re-anchoring entries at index 0.
func (f *frontier[N]) grow() {
	if f.size < len(f.buf) {
		return
	}
	next := make([]*cursor[N], max(8, 2*len(f.buf)))
	for i := 0; i < f.size; i++ {
		next[i] = f.buf[(f.head+i)%len(f.buf)]
	}
	f.buf, f.head = next, 0
}
