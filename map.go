package bst

import (
	"cmp"
	"fmt"
)

// Map is an ordered map from K to V. Entries are kept sorted by the
// map's comparator; iteration always yields keys in ascending
// comparator order, independent of insertion order.
type Map[K, V any] struct {
	tree tree[K, V]
}

// NewMap returns an empty map ordered by the standard Go ordering of
// K. This is the default construction: no comparator argument is
// needed because the key type supplies one.
func NewMap[K cmp.Ordered, V any]() *Map[K, V] {
	return NewMapFunc[K, V](cmp.Compare[K])
}

// NewMapFunc returns an empty map ordered by c. The comparator must be
// a total order; keys that compare equal are treated as the same key.
func NewMapFunc[K, V any](c Comparator[K]) *Map[K, V] {
	return &Map[K, V]{tree: tree[K, V]{cmp: c}}
}

// Comparator returns the ordering the map was built with.
func (m *Map[K, V]) Comparator() Comparator[K] {
	return m.tree.cmp
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	return m.tree.size
}

// IsEmpty reports whether the map contains no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.tree.size == 0
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	m.tree.root = nil
	m.tree.size = 0
}

// Insert adds a key/value entry. If the key is already present its
// value is replaced (the stored key is kept) and the previous value is
// returned with replaced == true; the map's size does not change.
func (m *Map[K, V]) Insert(key K, value V) (previous V, replaced bool) {
	var target *node[K, V]
	var added bool
	m.tree.root, target, added = m.tree.insert(m.tree.root, key, func() V { return value })
	if added {
		m.tree.size++
		return previous, false
	}
	previous = target.value
	target.value = value
	return previous, true
}

// GetOrInsert returns a pointer to the value stored under key,
// inserting def() first when the key is absent. The pointer is valid
// until the next mutating call on the map.
func (m *Map[K, V]) GetOrInsert(key K, def func() V) *V {
	var target *node[K, V]
	var added bool
	m.tree.root, target, added = m.tree.insert(m.tree.root, key, def)
	if added {
		m.tree.size++
	}
	return &target.value
}

// Get returns the value stored under key. The second return value
// reports whether the key was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if n := m.tree.find(m.tree.searchFor(key)); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

// GetMut returns a pointer to the value stored under key, or nil when
// the key is absent. The pointer is valid until the next mutating call
// on the map.
func (m *Map[K, V]) GetMut(key K) *V {
	if n := m.tree.find(m.tree.searchFor(key)); n != nil {
		return &n.value
	}
	return nil
}

// MustGet returns the value stored under key and panics when the key
// is absent. Use it where a missing key is a programming error, the
// way an out-of-range slice index is; use Get when absence is an
// expected outcome.
func (m *Map[K, V]) MustGet(key K) V {
	n := m.tree.find(m.tree.searchFor(key))
	if n == nil {
		panic(fmt.Sprintf("bst: key not found: %v", key))
	}
	return n.value
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	return m.tree.find(m.tree.searchFor(key)) != nil
}

// FindWith returns the value whose key f maps to zero. f receives the
// key at each visited node and returns the ordering of the searched
// key against it, so it must agree with the map's comparator. This
// allows lookup by a query type that is not K, without building a key.
func (m *Map[K, V]) FindWith(f func(key K) int) (V, bool) {
	if n := m.tree.find(f); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

// FindWithMut is FindWith returning a pointer to the stored value, or
// nil when no key matches. The pointer is valid until the next
// mutating call on the map.
func (m *Map[K, V]) FindWithMut(f func(key K) int) *V {
	if n := m.tree.find(f); n != nil {
		return &n.value
	}
	return nil
}

// Remove deletes the entry under key and returns its value. The
// second return value is false when the key was absent.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	var removed *node[K, V]
	m.tree.root, removed = m.tree.remove(m.tree.root, m.tree.searchFor(key))
	if removed == nil {
		var zero V
		return zero, false
	}
	m.tree.size--
	return removed.value, true
}

// Extend inserts every entry in order. Entries with keys already
// present replace the stored value, exactly as repeated Insert calls
// would.
func (m *Map[K, V]) Extend(entries ...Entry[K, V]) {
	for _, e := range entries {
		m.Insert(e.Key, e.Value)
	}
}

// ForEach visits every entry in ascending key order until fn returns
// false.
func (m *Map[K, V]) ForEach(fn func(key K, value V) bool) {
	walk(m.tree.root, func(n *node[K, V]) bool {
		return fn(n.key, n.value)
	})
}

// Keys returns all keys in ascending order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.tree.size)
	m.ForEach(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Values returns all values, ordered by their keys.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.tree.size)
	m.ForEach(func(_ K, value V) bool {
		values = append(values, value)
		return true
	})
	return values
}

// Iterator returns an iterator over all entries in ascending key
// order.
func (m *Map[K, V]) Iterator() *Iterator[K, V] {
	return newIterator(&m.tree, Unbounded[K](), Unbounded[K](), false)
}

// ReverseIterator returns an iterator over all entries in descending
// key order.
func (m *Map[K, V]) ReverseIterator() *Iterator[K, V] {
	return newIterator(&m.tree, Unbounded[K](), Unbounded[K](), true)
}

// Range returns an iterator over the entries between from and to in
// ascending key order. Range(Unbounded, Unbounded) iterates the whole
// map.
func (m *Map[K, V]) Range(from, to Bound[K]) *Iterator[K, V] {
	return newIterator(&m.tree, from, to, false)
}

// ReverseRange returns an iterator over the entries between from and
// to in descending key order.
func (m *Map[K, V]) ReverseRange(from, to Bound[K]) *Iterator[K, V] {
	return newIterator(&m.tree, from, to, true)
}
