package avltree

// Step costs of rebalancing operations.
const (
	promotionCost      = 1
	demotionCost       = 1
	rotationCost       = 2
	doubleRotationCost = 5
)

// Insert stores value v for key k. It returns the number of rebalancing
// steps performed, which is 0 if the tree did not need any.
//
// If k is already present, Insert returns ErrDuplicateKey and leaves the tree
// unchanged.
func (t *Tree) Insert(k int, v string) (int, error) {
	return t.insertNode(NewNode(k, v))
}

// insertNode attaches the unattached node x as a new leaf.
func (t *Tree) insertNode(x *Node) (int, error) {
	y := t.position(x.key)
	if y == nil {
		x.reset()
		t.setRoot(x)
		return 0, nil
	}
	if y.key == x.key {
		return 0, ErrDuplicateKey
	}
	x.reset()
	wasLeaf := y.isLeaf()
	if x.key < y.key {
		y.attachLeft(x)
	} else {
		y.attachRight(x)
	}
	if x.key < t.min.key {
		t.min = x
	}
	if x.key > t.max.key {
		t.max = x
	}
	if !wasLeaf { // y has gained its second child, heights are unaffected
		propagateSize(y)
		return 0, nil
	}
	return t.rebalanceInsert(y), nil
}

// rebalanceInsert walks from z towards the root, restoring rank differences
// after a subtree below z has grown by one. It fixes subtree sizes all the
// way up to the root and returns the number of rebalancing steps.
func (t *Tree) rebalanceInsert(z *Node) int {
	steps := 0
	for z != nil {
		z.fixSize()
		l, r := z.rankDiffs()
		switch {
		case balanced(l, r):
			propagateSize(z.parent)
			return steps
		case l == 0 && r == 1, l == 1 && r == 0:
			z.height++
			steps += promotionCost
			z = z.parent
		case l == 0 && r == 2:
			top, s, grown := t.fixLeftHeavy(z)
			steps += s
			if !grown {
				propagateSize(top.parent)
				return steps
			}
			z = top.parent
		case l == 2 && r == 0:
			top, s, grown := t.fixRightHeavy(z)
			steps += s
			if !grown {
				propagateSize(top.parent)
				return steps
			}
			z = top.parent
		default:
			assert(false, "rebalanceInsert: unexpected rank differences")
		}
	}
	return steps
}

// fixLeftHeavy resolves a (0,2) node z. It returns the node now in the
// place of z, the number of steps, and whether that subtree grew in height.
func (t *Tree) fixLeftHeavy(z *Node) (*Node, int, bool) {
	x := z.left
	xl, xr := x.rankDiffs()
	switch {
	case xl == 1 && xr == 2:
		top := t.rotateRight(z)
		z.height--
		return top, rotationCost, false
	case xl == 2 && xr == 1:
		top := t.rotateLeftRight(z)
		top.height++
		top.left.height--
		top.right.height--
		return top, doubleRotationCost, false
	case xl == 1 && xr == 1:
		// only possible below a Join connector
		top := t.rotateRight(z)
		top.height++
		return top, rotationCost + promotionCost, true
	}
	assert(false, "fixLeftHeavy: unexpected rank differences of left child")
	return z, 0, false
}

// fixRightHeavy resolves a (2,0) node z, mirroring fixLeftHeavy.
func (t *Tree) fixRightHeavy(z *Node) (*Node, int, bool) {
	x := z.right
	xl, xr := x.rankDiffs()
	switch {
	case xl == 2 && xr == 1:
		top := t.rotateLeft(z)
		z.height--
		return top, rotationCost, false
	case xl == 1 && xr == 2:
		top := t.rotateRightLeft(z)
		top.height++
		top.left.height--
		top.right.height--
		return top, doubleRotationCost, false
	case xl == 1 && xr == 1:
		top := t.rotateLeft(z)
		top.height++
		return top, rotationCost + promotionCost, true
	}
	assert(false, "fixRightHeavy: unexpected rank differences of right child")
	return z, 0, false
}

func balanced(l, r int) bool {
	return (l == 1 && r == 1) || (l == 1 && r == 2) || (l == 2 && r == 1)
}
