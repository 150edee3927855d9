// Package walker defines the core types for lazy graph traversal:
// the successor function, the visit-admission Tracker contract, and
// the sentinel errors shared by all construction and traversal entry points.
package walker

import (
	"errors"
	"iter"
	"reflect"
)

var (
	// ErrNilSuccessorFunc is returned when a Walker is constructed
	// without a successor function.
	ErrNilSuccessorFunc = errors.New("walker: successor function is nil")

	// ErrNilTracker is returned when InGraphTracked is given a nil Tracker.
	ErrNilTracker = errors.New("walker: tracker is nil")

	// ErrNilStartNode is returned when any start node passed to PreOrder,
	// PostOrder or BreadthFirst is nil.
	ErrNilStartNode = errors.New("walker: start node is nil")
)

// SuccessorFunc maps a node to the lazily-enumerable sequence of its
// successors. Returning nil means "no successors" and is not an error.
//
// The function must be referentially consistent: for the engine's
// each-node-once and ordering guarantees to hold it has to report the same
// successors every time it is asked about the same node. This is a caller
// obligation and is not enforced.
type SuccessorFunc[N any] func(N) iter.Seq[N]

// Tracker is the visit-admission policy: it decides, once per visit attempt,
// whether a node may be descended into and emitted.
//
// Admit is deliberately not a pure predicate. Recording the node in shared
// state (a set, a bloom filter, a concurrent map) is its intended mechanism
// for remembering prior visits; returning false skips the node and all of
// its outgoing edges for this attempt.
type Tracker[N any] interface {
	Admit(node N) bool
}

// TrackerFunc adapts an ordinary function to the Tracker interface.
type TrackerFunc[N any] func(N) bool

// Admit calls f(node).
func (f TrackerFunc[N]) Admit(node N) bool { return f(node) }

// nilable reports whether values of type N can be nil at all.
// Computed once per traversal so the per-node check stays cheap.
func nilable[N any]() bool {
	switch reflect.TypeFor[N]().Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}

// isNil reports whether n is a nil value of a nilable kind.
func isNil[N any](n N) bool {
	return reflect.ValueOf(&n).Elem().IsNil()
}
