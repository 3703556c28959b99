package bst

import "cmp"

// Set is an ordered collection of unique keys, backed by the same tree
// engine as Map with no per-key value. Iteration yields keys in
// ascending comparator order.
type Set[K any] struct {
	tree tree[K, struct{}]
}

// NewSet returns an empty set ordered by the standard Go ordering of
// K.
func NewSet[K cmp.Ordered]() *Set[K] {
	return NewSetFunc[K](cmp.Compare[K])
}

// NewSetFunc returns an empty set ordered by c. The comparator must be
// a total order; keys that compare equal are treated as the same key.
func NewSetFunc[K any](c Comparator[K]) *Set[K] {
	return &Set[K]{tree: tree[K, struct{}]{cmp: c}}
}

// Comparator returns the ordering the set was built with.
func (s *Set[K]) Comparator() Comparator[K] {
	return s.tree.cmp
}

// Len returns the number of keys in the set.
func (s *Set[K]) Len() int {
	return s.tree.size
}

// IsEmpty reports whether the set contains no keys.
func (s *Set[K]) IsEmpty() bool {
	return s.tree.size == 0
}

// Clear removes all keys.
func (s *Set[K]) Clear() {
	s.tree.root = nil
	s.tree.size = 0
}

// Insert adds key to the set and reports whether it was newly added.
func (s *Set[K]) Insert(key K) bool {
	var added bool
	s.tree.root, _, added = s.tree.insert(s.tree.root, key, func() struct{} { return struct{}{} })
	if added {
		s.tree.size++
	}
	return added
}

// Remove deletes key and reports whether it was present.
func (s *Set[K]) Remove(key K) bool {
	var removed *node[K, struct{}]
	s.tree.root, removed = s.tree.remove(s.tree.root, s.tree.searchFor(key))
	if removed == nil {
		return false
	}
	s.tree.size--
	return true
}

// Contains reports whether key is in the set.
func (s *Set[K]) Contains(key K) bool {
	return s.tree.find(s.tree.searchFor(key)) != nil
}

// Extend inserts every key; already-present keys are left as they
// are.
func (s *Set[K]) Extend(keys ...K) {
	for _, k := range keys {
		s.Insert(k)
	}
}

// ForEach visits every key in ascending order until fn returns false.
func (s *Set[K]) ForEach(fn func(key K) bool) {
	walk(s.tree.root, func(n *node[K, struct{}]) bool {
		return fn(n.key)
	})
}

// Keys returns all keys in ascending order.
func (s *Set[K]) Keys() []K {
	keys := make([]K, 0, s.tree.size)
	s.ForEach(func(key K) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Iterator returns an iterator over all keys in ascending order.
func (s *Set[K]) Iterator() *SetIterator[K] {
	return &SetIterator[K]{it: *newIterator(&s.tree, Unbounded[K](), Unbounded[K](), false)}
}

// ReverseIterator returns an iterator over all keys in descending
// order.
func (s *Set[K]) ReverseIterator() *SetIterator[K] {
	return &SetIterator[K]{it: *newIterator(&s.tree, Unbounded[K](), Unbounded[K](), true)}
}

// Range returns an iterator over the keys between from and to in
// ascending order.
func (s *Set[K]) Range(from, to Bound[K]) *SetIterator[K] {
	return &SetIterator[K]{it: *newIterator(&s.tree, from, to, false)}
}

// Set algebra. Each operation runs a single parallel in-order walk of
// both trees (O(n+m), the keys are already sorted) and assembles the
// result tree in linear time from the merged slice; building by
// repeated insertion would cost an extra log factor. The result is a
// new set ordered by the receiver's comparator, which is also the
// order the other set's keys are interpreted in.

// Union returns a new set with the keys present in either set. When a
// key is in both, the receiver's copy is kept.
func (s *Set[K]) Union(other *Set[K]) *Set[K] {
	return s.merge(other, true, true, true)
}

// Intersection returns a new set with the keys present in both sets.
func (s *Set[K]) Intersection(other *Set[K]) *Set[K] {
	return s.merge(other, false, false, true)
}

// Difference returns a new set with the receiver's keys that are not
// in other.
func (s *Set[K]) Difference(other *Set[K]) *Set[K] {
	return s.merge(other, true, false, false)
}

// SymmetricDifference returns a new set with the keys present in
// exactly one of the two sets.
func (s *Set[K]) SymmetricDifference(other *Set[K]) *Set[K] {
	return s.merge(other, true, true, false)
}

// IsSubset reports whether every key of the receiver is in other.
func (s *Set[K]) IsSubset(other *Set[K]) bool {
	a, b := s.Keys(), other.Keys()
	i, j := 0, 0
	for i < len(a) {
		if j == len(b) {
			return false
		}
		switch c := s.tree.cmp(a[i], b[j]); {
		case c < 0:
			return false
		case c > 0:
			j++
		default:
			i++
			j++
		}
	}
	return true
}

// IsDisjoint reports whether the two sets share no keys.
func (s *Set[K]) IsDisjoint(other *Set[K]) bool {
	a, b := s.Keys(), other.Keys()
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch c := s.tree.cmp(a[i], b[j]); {
		case c < 0:
			i++
		case c > 0:
			j++
		default:
			return false
		}
	}
	return true
}

// merge walks both key sequences in lockstep, keeping keys found only
// in the receiver (onlyA), only in other (onlyB), or in both.
func (s *Set[K]) merge(other *Set[K], onlyA, onlyB, both bool) *Set[K] {
	a, b := s.Keys(), other.Keys()
	merged := make([]Entry[K, struct{}], 0, len(a)+len(b))
	keep := func(key K) {
		merged = append(merged, Entry[K, struct{}]{Key: key})
	}

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch c := s.tree.cmp(a[i], b[j]); {
		case c < 0:
			if onlyA {
				keep(a[i])
			}
			i++
		case c > 0:
			if onlyB {
				keep(b[j])
			}
			j++
		default:
			if both {
				keep(a[i])
			}
			i++
			j++
		}
	}
	if onlyA {
		for ; i < len(a); i++ {
			keep(a[i])
		}
	}
	if onlyB {
		for ; j < len(b); j++ {
			keep(b[j])
		}
	}

	out := NewSetFunc[K](s.tree.cmp)
	out.tree.root = buildBalanced(merged)
	out.tree.size = len(merged)
	return out
}
