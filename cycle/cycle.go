// Package cycle finds the first reachable cycle in a graph defined by a
// successor function, reporting the path that leads into and around it.
package cycle

import (
	"github.com/katalvlaran/graphwalk/walker"
)

// Detect walks the graph observed through next from the given start nodes
// and reports whether a cycle is reachable.
//
// On success the path runs from the first still-open ancestor through the
// cycle and ends by repeating the closing node: edges A→B and B→A yield
// (true, [A B A], nil). Only the first cycle found is reported; detection
// stops there and later cycles in the same graph are never examined.
// With no reachable cycle the result is (false, nil, nil).
//
// Detect hangs on an infinite acyclic graph; see the package documentation.
func Detect[N comparable](next walker.SuccessorFunc[N], starts ...N) (bool, []N, error) {
	// 1. Admission state: seen is a superset of the open-ancestor path.
	seen := make(map[N]struct{})
	path := newPathSet[N]()

	// 2. Closing target of the first cycle found; later hits are ignored.
	var (
		target   N
		recorded bool
	)

	tracker := walker.TrackerFunc[N](func(n N) bool {
		if _, ok := seen[n]; !ok {
			seen[n] = struct{}{}
			path.add(n)

			return true // fresh node: descend
		}
		if path.contains(n) && !recorded {
			// Back edge onto an open ancestor: the cycle closes at n.
			target, recorded = n, true
		}
		// Already explored (or just recorded): never descend again.
		return false
	})

	w, err := walker.InGraphTracked(next, tracker)
	if err != nil {
		return false, nil, err
	}
	seq, err := w.PostOrder(starts...)
	if err != nil {
		return false, nil, err
	}

	// 3. Post-order emission is the backtrack signal: the emitted node's
	//    subtree is complete, so it leaves the open-ancestor path. The
	//    first node emitted after a cycle was recorded ends the cyclic path.
	for n := range seq {
		path.remove(n)
		if recorded {
			return true, append(path.ordered(), n, target), nil
		}
	}

	return false, nil, nil
}

// pathSet is an ordered membership set for the open-ancestor chain.
// Nodes removed on backtrack are never re-added (they stay in seen), so
// removal only clears membership; ordered() filters the insertion log.
type pathSet[N comparable] struct {
	order  []N
	member map[N]struct{}
}

func newPathSet[N comparable]() *pathSet[N] {
	return &pathSet[N]{member: make(map[N]struct{})}
}

func (p *pathSet[N]) add(n N) {
	p.order = append(p.order, n)
	p.member[n] = struct{}{}
}

func (p *pathSet[N]) remove(n N) {
	delete(p.member, n)
}

func (p *pathSet[N]) contains(n N) bool {
	_, ok := p.member[n]

	return ok
}

// ordered returns the still-open ancestors in traversal order.
func (p *pathSet[N]) ordered() []N {
	out := make([]N, 0, len(p.member))
	for _, n := range p.order {
		if _, ok := p.member[n]; ok {
			out = append(out, n)
		}
	}

	return out
}
