package bst

// The engine is an AA tree, a simplified red-black variant where a red
// (horizontal) link may only appear as a right child. Rebalancing is
// more frequent than in a red-black tree but each step is cheaper, and
// only two rotations exist.
//
// Invariants, with level(nil) == 0:
//   - a leaf has level 1
//   - level(n.left) == level(n)-1
//   - level(n.right) is level(n) or level(n)-1
//   - level(n.right.right) < level(n)

type node[K, V any] struct {
	key   K
	value V
	left  *node[K, V]
	right *node[K, V]
	level int
}

type tree[K, V any] struct {
	root *node[K, V]
	size int
	cmp  Comparator[K]
}

func levelOf[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.level
}

// skew removes a left horizontal link by rotating right.
func skew[K, V any](n *node[K, V]) *node[K, V] {
	if n.left != nil && n.left.level == n.level {
		l := n.left
		n.left = l.right
		l.right = n
		return l
	}
	return n
}

// split removes a double right horizontal link by rotating left and
// promoting the new parent.
func split[K, V any](n *node[K, V]) *node[K, V] {
	if n.right != nil && n.right.right != nil && n.right.right.level == n.level {
		r := n.right
		n.right = r.left
		r.left = n
		r.level++
		return r
	}
	return n
}

// insert descends to the key's position, creating a node with def()
// when the key is absent, and rebalances on the way back up. It
// returns the new subtree root, the node holding the key, and whether
// a node was created. An existing node is returned untouched so the
// caller decides between replace and get-or-insert semantics.
func (t *tree[K, V]) insert(n *node[K, V], key K, def func() V) (*node[K, V], *node[K, V], bool) {
	if n == nil {
		created := &node[K, V]{key: key, value: def(), level: 1}
		return created, created, true
	}

	var target *node[K, V]
	var added bool
	switch c := t.cmp(key, n.key); {
	case c < 0:
		n.left, target, added = t.insert(n.left, key, def)
	case c > 0:
		n.right, target, added = t.insert(n.right, key, def)
	default:
		return n, n, false
	}
	return split(skew(n)), target, added
}

// find walks the tree guided by f, which receives the current key and
// returns the ordering of the searched-for key against it.
func (t *tree[K, V]) find(f func(K) int) *node[K, V] {
	n := t.root
	for n != nil {
		switch c := f(n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// searchFor is the search function for a concrete key.
func (t *tree[K, V]) searchFor(key K) func(K) int {
	return func(cur K) int { return t.cmp(key, cur) }
}

// remove deletes the node matched by f and returns the new subtree
// root plus the detached node (nil when the key was absent). A node
// with two children swaps its entry with the in-order predecessor and
// the deletion continues in the left subtree, so the structural
// removal always happens at a node with at most one child.
func (t *tree[K, V]) remove(n *node[K, V], f func(K) int) (*node[K, V], *node[K, V]) {
	if n == nil {
		return nil, nil
	}

	var removed *node[K, V]
	switch c := f(n.key); {
	case c < 0:
		n.left, removed = t.remove(n.left, f)
	case c > 0:
		n.right, removed = t.remove(n.right, f)
	default:
		if n.left != nil && n.right != nil {
			pred := n.left
			for pred.right != nil {
				pred = pred.right
			}
			n.key, pred.key = pred.key, n.key
			n.value, pred.value = pred.value, n.value
			n.left, removed = t.remove(n.left, f)
		} else {
			removed = n
			child := n.left
			if child == nil {
				child = n.right
			}
			if child == nil {
				return nil, n
			}
			n = child
		}
	}
	return fixAfterRemove(n), removed
}

// fixAfterRemove restores the AA invariants below a deletion point:
// drop the level if either child fell two below, cap the right child,
// then skew the node, its right child and right grandchild, and split
// the node and its right child.
func fixAfterRemove[K, V any](n *node[K, V]) *node[K, V] {
	if levelOf(n.left) < n.level-1 || levelOf(n.right) < n.level-1 {
		n.level--
		if levelOf(n.right) > n.level {
			n.right.level = n.level
		}
		n = skew(n)
		if n.right != nil {
			n.right = skew(n.right)
			if n.right.right != nil {
				n.right.right = skew(n.right.right)
			}
		}
		n = split(n)
		if n.right != nil {
			n.right = split(n.right)
		}
	}
	return n
}

// walk visits the subtree in ascending key order, stopping early when
// the callback returns false.
func walk[K, V any](n *node[K, V], fn func(*node[K, V]) bool) bool {
	if n == nil {
		return true
	}
	if !walk(n.left, fn) {
		return false
	}
	if !fn(n) {
		return false
	}
	return walk(n.right, fn)
}

// buildBalanced constructs an AA tree from entries already sorted in
// strictly ascending key order. The midpoint split hands the extra
// element to the right subtree, so setting each level to one above the
// left child leaves every right horizontal link single. Used by the
// set-algebra merges to build results in linear time instead of n
// repeated inserts.
func buildBalanced[K, V any](entries []Entry[K, V]) *node[K, V] {
	if len(entries) == 0 {
		return nil
	}
	mid := (len(entries) - 1) / 2
	n := &node[K, V]{key: entries[mid].Key, value: entries[mid].Value}
	n.left = buildBalanced(entries[:mid])
	n.right = buildBalanced(entries[mid+1:])
	n.level = levelOf(n.left) + 1
	return n
}
