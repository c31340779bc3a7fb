package avltree

// Join merges the receiver, the connector node x and tree other into a single
// tree, which is stored in the receiver. other is left empty.
//
// x must be an unattached node, usually created by NewNode; it is re-used as
// an inner node of the result. Either every key of the receiver is smaller
// than x.Key() and every key of other is larger, or the other way round.
// This precondition is not checked; violating it results in an invalid tree.
//
// Join returns its cost, i.e. |h1 − h2| + 1 for the heights h1, h2 of the
// input trees, where an empty tree has height −1.
func (t *Tree) Join(x *Node, other *Tree) int {
	assert(x != nil, "Join: connector node is nil")
	cost := abs(t.Height()-other.Height()) + 1
	x.reset()
	switch {
	case t.Empty() && other.Empty():
		t.setRoot(x)
	case t.Empty():
		t.setRoot(other.root)
		other.clear()
		_, err := t.insertNode(x)
		assert(err == nil, "Join: connector key present in joined tree")
	case other.Empty():
		_, err := t.insertNode(x)
		assert(err == nil, "Join: connector key present in joined tree")
	default:
		low, high := t.root, other.root
		if x.key < t.root.key {
			low, high = high, low
		}
		other.clear()
		t.joinRoots(low, x, high)
	}
	T().Debugf("avltree: joined at connector %d with cost %d", x.key, cost)
	return cost
}

// joinRoots links the valid trees low and high, with all keys of low smaller
// than x.key and all keys of high larger, using x as connector. The result
// becomes the content of t.
func (t *Tree) joinRoots(low, x, high *Node) {
	hl, hh := low.height, high.height
	switch {
	case hl == hh:
		x.attachLeft(low)
		x.attachRight(high)
		x.height = hl + 1
		x.fixSize()
		t.setRoot(x)
		return
	case hl > hh: // descend the right spine of low
		var c *Node
		b := low
		for b.Height() > hh {
			c, b = b, b.right
		}
		x.attachLeft(b)
		x.attachRight(high)
		x.fixHeight()
		x.fixSize()
		c.attachRight(x)
		t.root = low
		low.parent = nil
		t.rebalanceInsert(c)
	default: // descend the left spine of high
		var c *Node
		b := high
		for b.Height() > hl {
			c, b = b, b.left
		}
		x.attachLeft(low)
		x.attachRight(b)
		x.fixHeight()
		x.fixSize()
		c.attachLeft(x)
		t.root = high
		high.parent = nil
		t.rebalanceInsert(c)
	}
	t.refreshExtrema()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
