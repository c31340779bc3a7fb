package avltree

// Delete removes key k from the tree. It returns the number of rebalancing
// steps performed, which is 0 if the tree did not need any.
//
// If k is not present, Delete returns ErrKeyNotFound and leaves the tree
// unchanged.
func (t *Tree) Delete(k int) (int, error) {
	if t.Empty() {
		return 0, ErrKeyNotFound
	}
	y := t.position(k)
	if y.key != k {
		return 0, ErrKeyNotFound
	}
	if y.left != nil && y.right != nil {
		// move the successor's item into y and unlink the successor instead
		s := leftmost(y.right)
		y.key, y.value = s.key, s.value
		y = s
	}
	// y has at most one child now
	child := y.left
	if child == nil {
		child = y.right
	}
	splice := y.parent
	t.replaceChild(splice, y, child)
	wasMin, wasMax := y == t.min, y == t.max
	y.left, y.right, y.parent = nil, nil, nil
	if t.root == nil {
		t.clear()
		return 0, nil
	}
	from := splice
	if from == nil {
		from = t.root
	}
	if wasMin {
		t.min = leftmost(from)
	}
	if wasMax {
		t.max = rightmost(from)
	}
	if splice == nil { // the root has been spliced out, its child is a valid tree
		return 0, nil
	}
	return t.rebalanceDelete(splice), nil
}

// rebalanceDelete walks from z towards the root, restoring rank differences
// after a subtree below z has shrunk by one. It fixes subtree sizes all the
// way up to the root and returns the number of rebalancing steps.
func (t *Tree) rebalanceDelete(z *Node) int {
	steps := 0
	for z != nil {
		z.fixSize()
		l, r := z.rankDiffs()
		switch {
		case balanced(l, r):
			propagateSize(z.parent)
			return steps
		case l == 2 && r == 2:
			z.height--
			steps += demotionCost
			z = z.parent
		case l == 3 && r == 1:
			top, s, shrunk := t.fixRightTaller(z)
			steps += s
			if !shrunk {
				propagateSize(top.parent)
				return steps
			}
			z = top.parent
		case l == 1 && r == 3:
			top, s, shrunk := t.fixLeftTaller(z)
			steps += s
			if !shrunk {
				propagateSize(top.parent)
				return steps
			}
			z = top.parent
		default:
			assert(false, "rebalanceDelete: unexpected rank differences")
		}
	}
	return steps
}

// fixRightTaller resolves a (3,1) node z. It returns the node now in the
// place of z, the number of steps, and whether that subtree is lower than z
// was before.
func (t *Tree) fixRightTaller(z *Node) (*Node, int, bool) {
	y := z.right
	yl, yr := y.rankDiffs()
	switch {
	case yl == 1 && yr == 1:
		top := t.rotateLeft(z)
		top.height++
		z.height--
		return top, rotationCost + promotionCost, false
	case yl == 2 && yr == 1:
		top := t.rotateLeft(z)
		z.height -= 2
		return top, rotationCost, true
	case yl == 1 && yr == 2:
		top := t.rotateRightLeft(z)
		top.height++
		top.left.height -= 2
		top.right.height--
		return top, doubleRotationCost, true
	}
	assert(false, "fixRightTaller: unexpected rank differences of right child")
	return z, 0, false
}

// fixLeftTaller resolves a (1,3) node z, mirroring fixRightTaller.
func (t *Tree) fixLeftTaller(z *Node) (*Node, int, bool) {
	y := z.left
	yl, yr := y.rankDiffs()
	switch {
	case yl == 1 && yr == 1:
		top := t.rotateRight(z)
		top.height++
		z.height--
		return top, rotationCost + promotionCost, false
	case yl == 1 && yr == 2:
		top := t.rotateRight(z)
		z.height -= 2
		return top, rotationCost, true
	case yl == 2 && yr == 1:
		top := t.rotateLeftRight(z)
		top.height++
		top.left.height--
		top.right.height -= 2
		return top, doubleRotationCost, true
	}
	assert(false, "fixLeftTaller: unexpected rank differences of left child")
	return z, 0, false
}
