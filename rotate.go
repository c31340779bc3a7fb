package avltree

// Rotations restructure the tree locally. They re-link the rotated nodes, the
// migrating grandchild and the edge from the grandparent (or the tree root),
// and recompute the sizes of the two nodes they move. Heights are left
// untouched: promotions and demotions are the business of the rebalancers.
//
//	       x                  y
//	      / \                / \
//	     y   c    right     a   x
//	    / \      ------>       / \
//	   a   b     <------      b   c
//	              left

// replaceChild puts newChild in the place of oldChild below parent. A nil
// parent means oldChild was the root of t.
func (t *Tree) replaceChild(parent, oldChild, newChild *Node) {
	if parent == nil {
		t.root = newChild
	} else if parent.left == oldChild {
		parent.left = newChild
	} else {
		assert(parent.right == oldChild, "replaceChild: node is not a child of parent")
		parent.right = newChild
	}
	if newChild != nil {
		newChild.parent = parent
	}
}

// rotateRight lifts x.left above x and returns it.
func (t *Tree) rotateRight(x *Node) *Node {
	y := x.left
	assert(y != nil, "rotateRight: no left child to lift")
	parent := x.parent
	x.attachLeft(y.right)
	y.attachRight(x)
	t.replaceChild(parent, x, y)
	x.fixSize()
	y.fixSize()
	T().Debugf("avltree: rotate right at %d, lifting %d", x.key, y.key)
	return y
}

// rotateLeft lifts x.right above x and returns it.
func (t *Tree) rotateLeft(x *Node) *Node {
	y := x.right
	assert(y != nil, "rotateLeft: no right child to lift")
	parent := x.parent
	x.attachRight(y.left)
	y.attachLeft(x)
	t.replaceChild(parent, x, y)
	x.fixSize()
	y.fixSize()
	T().Debugf("avltree: rotate left at %d, lifting %d", x.key, y.key)
	return y
}

// rotateLeftRight lifts x.left.right above x and returns it.
// x.left becomes its left child, x its right child.
func (t *Tree) rotateLeftRight(x *Node) *Node {
	t.rotateLeft(x.left)
	return t.rotateRight(x)
}

// rotateRightLeft lifts x.right.left above x and returns it.
// x becomes its left child, x.right its right child.
func (t *Tree) rotateRightLeft(x *Node) *Node {
	t.rotateRight(x.right)
	return t.rotateLeft(x)
}
