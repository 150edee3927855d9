package walker

import "sync"

// SetTracker is the default graph-mode admission policy: a map-backed
// membership set that admits a node exactly once. Memory grows linearly
// with the number of distinct nodes admitted. Not safe for concurrent use;
// see SyncSetTracker for the shareable variant.
type SetTracker[N comparable] struct {
	seen map[N]struct{}
}

// NewSetTracker returns an empty SetTracker.
func NewSetTracker[N comparable]() *SetTracker[N] {
	return &SetTracker[N]{seen: make(map[N]struct{})}
}

// Admit records node and reports whether this was its first sighting.
func (t *SetTracker[N]) Admit(node N) bool {
	if _, ok := t.seen[node]; ok {
		return false
	}
	t.seen[node] = struct{}{}

	return true
}

// SyncSetTracker is a concurrency-safe membership set for collaborative
// exploration: one instance shared via InGraphTracked lets several
// goroutines walk the same graph simultaneously, each node claimed by
// exactly one of them.
type SyncSetTracker[N comparable] struct {
	seen sync.Map
}

// NewSyncSetTracker returns an empty SyncSetTracker.
func NewSyncSetTracker[N comparable]() *SyncSetTracker[N] {
	return &SyncSetTracker[N]{}
}

// Admit atomically records node and reports whether this call claimed it.
func (t *SyncSetTracker[N]) Admit(node N) bool {
	_, loaded := t.seen.LoadOrStore(node, struct{}{})

	return !loaded
}
