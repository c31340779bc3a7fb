package avltree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Tree is an AVL tree mapping unique integer keys to string values.
//
// A tree created by
//
//	Tree{}
//
// is a valid object and behaves like an empty tree.
//
// Operations and their complexity:
//
//	Operation     |   Complexity
//	--------------+-------------------
//	Search        |   O(log n)
//	Insert        |   O(log n)
//	Delete        |   O(log n)
//	Min, Max      |   O(1)
//	Size          |   O(1)
//	Select, Rank  |   O(log n)
//	Join          |   O(|h1 − h2| + 1)
//	Split         |   O(log n)
//	Keys, Values  |   O(n)
type Tree struct {
	root     *Node
	min, max *Node // cached extrema, nil iff the tree is empty
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{}
}

// Empty reports whether the tree holds no keys.
func (t *Tree) Empty() bool {
	return t == nil || t.root == nil
}

// Size returns the number of keys in the tree.
func (t *Tree) Size() int {
	if t == nil {
		return 0
	}
	return t.root.Size()
}

// Root returns the root node of the tree, or nil if the tree is empty.
func (t *Tree) Root() *Node {
	if t == nil {
		return nil
	}
	return t.root
}

// Search returns the value stored for key k. If k is not present, Search
// returns ErrKeyNotFound.
func (t *Tree) Search(k int) (string, error) {
	if t.Empty() {
		return "", ErrKeyNotFound
	}
	n := t.position(k)
	if n.key != k {
		return "", ErrKeyNotFound
	}
	return n.value, nil
}

// Min returns the value of the smallest key, or ErrEmptyTree.
func (t *Tree) Min() (string, error) {
	if t.Empty() {
		return "", ErrEmptyTree
	}
	return t.min.value, nil
}

// Max returns the value of the largest key, or ErrEmptyTree.
func (t *Tree) Max() (string, error) {
	if t.Empty() {
		return "", ErrEmptyTree
	}
	return t.max.value, nil
}

// MinNode returns the node holding the smallest key, or nil.
func (t *Tree) MinNode() *Node {
	if t == nil {
		return nil
	}
	return t.min
}

// MaxNode returns the node holding the largest key, or nil.
func (t *Tree) MaxNode() *Node {
	if t == nil {
		return nil
	}
	return t.max
}

// Height returns the height of the tree, which is −1 for an empty tree.
func (t *Tree) Height() int {
	if t == nil {
		return -1
	}
	return t.root.Height()
}

// position descends from the root following key k. It returns the node
// holding k if present, otherwise the last real node visited, i.e. the
// would-be parent of k. For an empty tree position returns nil.
func (t *Tree) position(k int) *Node {
	var last *Node
	n := t.root
	for n != nil {
		last = n
		switch {
		case k == n.key:
			return n
		case k < n.key:
			n = n.left
		default:
			n = n.right
		}
	}
	return last
}

// setRoot makes n the root of t and refreshes the cached extrema.
// n may be nil, leaving t empty.
func (t *Tree) setRoot(n *Node) {
	t.root = n
	if n != nil {
		n.parent = nil
	}
	t.refreshExtrema()
}

func (t *Tree) refreshExtrema() {
	t.min = leftmost(t.root)
	t.max = rightmost(t.root)
}

// clear drops all nodes from t.
func (t *Tree) clear() {
	t.root, t.min, t.max = nil, nil, nil
}
