package avltree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "fmt"

// Node is a node of an AVL tree. Clients receive nodes from Root, Select and
// the navigation functions, and create unattached connector nodes for Join
// with NewNode.
//
// The nil *Node is the sentinel for a missing subtree: all accessors may be
// called on nil and report height −1, size 0 and no relatives.
type Node struct {
	key         int
	value       string
	height      int // length of the longest path down to a sentinel
	size        int // number of real nodes in this subtree
	left, right *Node
	parent      *Node // back-reference only, nil for the root
}

// NewNode creates an unattached leaf node.
func NewNode(key int, value string) *Node {
	return &Node{key: key, value: value, size: 1}
}

// IsReal reports whether n is a real node, i.e. not the sentinel.
func (n *Node) IsReal() bool {
	return n != nil
}

// Key returns the key of n, or 0 for the sentinel.
func (n *Node) Key() int {
	if n == nil {
		return 0
	}
	return n.key
}

// Value returns the value of n, or "" for the sentinel.
func (n *Node) Value() string {
	if n == nil {
		return ""
	}
	return n.value
}

// Height returns the height of n. The sentinel has height −1, a leaf height 0.
func (n *Node) Height() int {
	if n == nil {
		return -1
	}
	return n.height
}

// Size returns the number of real nodes in the subtree of n.
func (n *Node) Size() int {
	if n == nil {
		return 0
	}
	return n.size
}

// Left returns the left child of n.
func (n *Node) Left() *Node {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child of n.
func (n *Node) Right() *Node {
	if n == nil {
		return nil
	}
	return n.right
}

// Parent returns the parent of n, or nil for a root.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

func (n *Node) String() string {
	if n == nil {
		return "<·>"
	}
	return fmt.Sprintf("<%d|h=%d|s=%d>", n.key, n.height, n.size)
}

// reset turns n into an unattached leaf, keeping key and value.
func (n *Node) reset() {
	n.left, n.right, n.parent = nil, nil, nil
	n.height = 0
	n.size = 1
}

func (n *Node) isLeaf() bool {
	return n.left == nil && n.right == nil
}

func (n *Node) isLeftChild() bool {
	return n.parent != nil && n.parent.left == n
}

// attachLeft makes child the left child of n. child may be the sentinel.
func (n *Node) attachLeft(child *Node) {
	n.left = child
	if child != nil {
		child.parent = n
	}
}

// attachRight makes child the right child of n. child may be the sentinel.
func (n *Node) attachRight(child *Node) {
	n.right = child
	if child != nil {
		child.parent = n
	}
}

// fixSize recomputes the size of n from its children.
func (n *Node) fixSize() {
	n.size = 1 + n.left.Size() + n.right.Size()
}

// fixHeight recomputes the height of n from its children.
func (n *Node) fixHeight() {
	n.height = 1 + max(n.left.Height(), n.right.Height())
}

// rankDiffs returns the rank differences of n to its left and right child.
func (n *Node) rankDiffs() (int, int) {
	return n.height - n.left.Height(), n.height - n.right.Height()
}

// propagateSize fixes subtree sizes from n up to the root.
func propagateSize(n *Node) {
	for ; n != nil; n = n.parent {
		n.fixSize()
	}
}

func leftmost(n *Node) *Node {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

func rightmost(n *Node) *Node {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// Successor returns the node with the next larger key, or nil if n holds the
// largest key of its tree.
func Successor(n *Node) *Node {
	if n == nil {
		return nil
	}
	if n.right != nil {
		return leftmost(n.right)
	}
	p := n.parent
	for p != nil && n == p.right {
		n, p = p, p.parent
	}
	return p
}

// Predecessor returns the node with the next smaller key, or nil if n holds
// the smallest key of its tree.
func Predecessor(n *Node) *Node {
	if n == nil {
		return nil
	}
	if n.left != nil {
		return rightmost(n.left)
	}
	p := n.parent
	for p != nil && n == p.left {
		n, p = p, p.parent
	}
	return p
}
