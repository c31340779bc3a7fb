package avltree

import "fmt"

// Check validates the structural invariants of the tree: AVL balance, correct
// heights and sizes, BST ordering, consistent parent links and correctly
// cached extrema. Errors wrap ErrInvariantViolated.
//
// Check visits every node and is meant to be used in tests.
func (t *Tree) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariantViolated)
	}
	if t.root == nil {
		if t.min != nil || t.max != nil {
			return fmt.Errorf("%w: empty tree caches extrema", ErrInvariantViolated)
		}
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root %d has a parent", ErrInvariantViolated, t.root.key)
	}
	if err := checkNode(t.root, nil, nil); err != nil {
		return err
	}
	if t.min != leftmost(t.root) {
		return fmt.Errorf("%w: cached minimum %v is not the leftmost node", ErrInvariantViolated, t.min)
	}
	if t.max != rightmost(t.root) {
		return fmt.Errorf("%w: cached maximum %v is not the rightmost node", ErrInvariantViolated, t.max)
	}
	return nil
}

// checkNode validates the subtree of n. lo and hi, if not nil, are exclusive
// bounds for the keys of the subtree.
func checkNode(n *Node, lo, hi *int) error {
	if n == nil {
		return nil
	}
	if lo != nil && n.key <= *lo {
		return fmt.Errorf("%w: key %d not greater than %d", ErrInvariantViolated, n.key, *lo)
	}
	if hi != nil && n.key >= *hi {
		return fmt.Errorf("%w: key %d not smaller than %d", ErrInvariantViolated, n.key, *hi)
	}
	for _, child := range []*Node{n.left, n.right} {
		if child != nil && child.parent != n {
			return fmt.Errorf("%w: parent link of %d does not point to %d",
				ErrInvariantViolated, child.key, n.key)
		}
	}
	if err := checkNode(n.left, lo, &n.key); err != nil {
		return err
	}
	if err := checkNode(n.right, &n.key, hi); err != nil {
		return err
	}
	if h := 1 + max(n.left.Height(), n.right.Height()); n.height != h {
		return fmt.Errorf("%w: height mismatch at %d (%d != %d)", ErrInvariantViolated, n.key, n.height, h)
	}
	if d := n.left.Height() - n.right.Height(); d < -1 || d > 1 {
		return fmt.Errorf("%w: node %d is out of balance (%d)", ErrInvariantViolated, n.key, d)
	}
	if s := 1 + n.left.Size() + n.right.Size(); n.size != s {
		return fmt.Errorf("%w: size mismatch at %d (%d != %d)", ErrInvariantViolated, n.key, n.size, s)
	}
	return nil
}
