package avltree

import "iter"

// ForEach walks the nodes of the tree in ascending key order.
//
// Iteration stops early if the callback returns false. The callback must not
// modify the tree.
func (t *Tree) ForEach(fn func(n *Node) bool) {
	if t.Empty() || fn == nil {
		return
	}
	for n := t.min; n != nil; n = Successor(n) {
		if !fn(n) {
			return
		}
	}
}

// All returns an iterator over all key/value pairs in ascending key order.
func (t *Tree) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		t.ForEach(func(n *Node) bool {
			return yield(n.key, n.value)
		})
	}
}

// Keys returns all keys in ascending order, or an empty slice.
func (t *Tree) Keys() []int {
	keys := make([]int, 0, t.Size())
	t.ForEach(func(n *Node) bool {
		keys = append(keys, n.key)
		return true
	})
	return keys
}

// Values returns all values, sorted by their keys, or an empty slice.
func (t *Tree) Values() []string {
	values := make([]string, 0, t.Size())
	t.ForEach(func(n *Node) bool {
		values = append(values, n.value)
		return true
	})
	return values
}
