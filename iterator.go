package bst

type (
	// Iterator yields the entries of a Map lazily, smallest key first
	// (largest first for a reverse iterator). It is a snapshot of the
	// traversal path only; mutating the tree while iterating is not
	// supported.
	Iterator[K, V any] struct {
		stack   []*node[K, V]
		cmp     Comparator[K]
		stop    Bound[K]
		reverse bool
	}

	// SetIterator yields the keys of a Set in comparator order.
	SetIterator[K any] struct {
		it Iterator[K, struct{}]
	}
)

// newIterator seeks the iterator to the first entry inside [from, to]
// (in traversal direction) by descending from the root, pushing every
// node on the admissible side of the start bound. The far bound is
// enforced lazily as entries are popped: in-order traversal emits keys
// monotonically, so the first out-of-bound entry ends the iteration.
func newIterator[K, V any](t *tree[K, V], from, to Bound[K], reverse bool) *Iterator[K, V] {
	it := &Iterator[K, V]{cmp: t.cmp, reverse: reverse}
	n := t.root
	if reverse {
		it.stop = from
		for n != nil {
			if to.admitsUpper(t.cmp, n.key) {
				it.stack = append(it.stack, n)
				n = n.right
			} else {
				n = n.left
			}
		}
	} else {
		it.stop = to
		for n != nil {
			if from.admitsLower(t.cmp, n.key) {
				it.stack = append(it.stack, n)
				n = n.left
			} else {
				n = n.right
			}
		}
	}
	return it
}

func (it *Iterator[K, V]) admits(key K) bool {
	if it.reverse {
		return it.stop.admitsLower(it.cmp, key)
	}
	return it.stop.admitsUpper(it.cmp, key)
}

// HasNext reports whether another entry remains within the iterator's
// bounds.
func (it *Iterator[K, V]) HasNext() bool {
	if it == nil || len(it.stack) == 0 {
		return false
	}
	return it.admits(it.stack[len(it.stack)-1].key)
}

// Next returns the next entry, or ErrNoMoreEntries once the iterator
// is exhausted.
func (it *Iterator[K, V]) Next() (Entry[K, V], error) {
	if !it.HasNext() {
		return Entry[K, V]{}, ErrNoMoreEntries
	}

	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]

	if it.reverse {
		for c := n.left; c != nil; c = c.right {
			it.stack = append(it.stack, c)
		}
	} else {
		for c := n.right; c != nil; c = c.left {
			it.stack = append(it.stack, c)
		}
	}
	return Entry[K, V]{Key: n.key, Value: n.value}, nil
}

// HasNext reports whether another key remains.
func (si *SetIterator[K]) HasNext() bool {
	return si != nil && si.it.HasNext()
}

// Next returns the next key, or ErrNoMoreEntries once the iterator is
// exhausted.
func (si *SetIterator[K]) Next() (K, error) {
	e, err := si.it.Next()
	return e.Key, err
}
