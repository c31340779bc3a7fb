package avltree

// Split decomposes the tree around key k. It returns a tree holding all keys
// smaller than k and a tree holding all keys larger than k. k itself is
// dropped, and the receiver is left empty.
//
// k must be present in the tree; clients should check with Search first.
// Split panics if k is not present.
//
// The pivot's subtrees seed the two results. Then Split walks up to the root,
// joining every subtree hanging off the search path into the result it
// belongs to, with a copy of the parent as connector. Summed up, the joins
// cost O(log n).
func (t *Tree) Split(k int) (*Tree, *Tree) {
	x := t.position(k)
	assert(x != nil && x.key == k, "Split: key not present in tree")
	left, right := New(), New()
	left.setRoot(x.left)
	right.setRoot(x.right)
	cost := 0
	for cur := x; cur != nil; {
		p := cur.parent
		fromLeft := cur.isLeftChild()
		cur.reset() // detach the dismantled path from the results
		if p == nil {
			break
		}
		conn := NewNode(p.key, p.value)
		sub := New()
		if fromLeft {
			sub.setRoot(p.right)
			cost += right.Join(conn, sub)
		} else {
			sub.setRoot(p.left)
			cost += left.Join(conn, sub)
		}
		cur = p
	}
	t.clear()
	T().Debugf("avltree: split at %d, total join cost %d", k, cost)
	return left, right
}
