// Package bst provides ordered collections backed by a self-balancing
// binary search tree (an AA tree).
//
// Map is a key/value collection and Set is a key-only collection; both
// keep their entries sorted by a pluggable comparator and share the
// same node engine. Neither is safe for concurrent use; callers that
// share a tree across goroutines must serialize access themselves.
package bst

import (
	"errors"
)

const (
	unbounded boundKind = iota
	included
	excluded
)

var (
	ErrNoMoreEntries = errors.New("there are no more entries in the tree")
)

type (
	// Comparator is a total order over K. It returns a negative number
	// when a sorts before b, zero when they are equal, and a positive
	// number when a sorts after b.
	Comparator[K any] func(a, b K) int

	// Entry is a single key/value pair of a Map.
	Entry[K, V any] struct {
		Key   K
		Value V
	}

	boundKind int

	// Bound is one endpoint of a key range. The zero value is an
	// unbounded endpoint.
	Bound[K any] struct {
		kind boundKind
		key  K
	}
)

// Included returns a bound that admits key itself.
func Included[K any](key K) Bound[K] {
	return Bound[K]{kind: included, key: key}
}

// Excluded returns a bound that stops just short of key.
func Excluded[K any](key K) Bound[K] {
	return Bound[K]{kind: excluded, key: key}
}

// Unbounded returns an endpoint with no limit in its direction.
func Unbounded[K any]() Bound[K] {
	return Bound[K]{kind: unbounded}
}

// admitsLower reports whether key is at or above b when b is used as a
// range start.
func (b Bound[K]) admitsLower(cmp Comparator[K], key K) bool {
	switch b.kind {
	case included:
		return cmp(key, b.key) >= 0
	case excluded:
		return cmp(key, b.key) > 0
	}
	return true
}

// admitsUpper reports whether key is at or below b when b is used as a
// range end.
func (b Bound[K]) admitsUpper(cmp Comparator[K], key K) bool {
	switch b.kind {
	case included:
		return cmp(key, b.key) <= 0
	case excluded:
		return cmp(key, b.key) < 0
	}
	return true
}
