package avltree

// Select returns the node holding the i-th smallest key, counting from 0.
// If i is negative or not smaller than the size of the tree, Select returns
// ErrIndexOutOfBounds.
func (t *Tree) Select(i int) (*Node, error) {
	if t.Empty() || i < 0 || i >= t.Size() {
		return nil, ErrIndexOutOfBounds
	}
	n := t.root
	for {
		l := n.left.Size()
		switch {
		case i < l:
			n = n.left
		case i == l:
			return n, nil
		default:
			i -= l + 1
			n = n.right
		}
		assert(n != nil, "Select: index routing exceeded subtree size")
	}
}

// Rank returns the number of keys smaller than k, which is the position of k
// in the sorted sequence of keys. If k is not present, Rank returns
// ErrKeyNotFound.
func (t *Tree) Rank(k int) (int, error) {
	if t == nil {
		return 0, ErrKeyNotFound
	}
	rank := 0
	n := t.root
	for n != nil {
		switch {
		case k < n.key:
			n = n.left
		case k > n.key:
			rank += n.left.Size() + 1
			n = n.right
		default:
			return rank + n.left.Size(), nil
		}
	}
	return 0, ErrKeyNotFound
}
