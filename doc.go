/*
Package avltree implements an augmented AVL tree with integer keys and string
values.

Augmented AVL Trees

Besides the usual search, insert and delete operations, every node carries the
size of its subtree. This allows order statistics (Select, Rank) in O(log n).
The tree caches its minimum and maximum nodes, so Min and Max are O(1).

Two structural operations work on whole trees:

	Join    concatenates two trees around a connector key, independent of
	        their heights, in O(|h1 − h2| + 1)
	Split   decomposes a tree around a key into a tree of smaller keys and
	        a tree of larger keys, in O(log n)

Rebalancing is expressed in terms of rank differences, i.e. the difference
between the height of a node and the height of one of its children. After
every public operation the following holds for all nodes:

  * rank differences are (1,1), (1,2) or (2,1);
  * size = 1 + size(left) + size(right);
  * keys in the left subtree < key < keys in the right subtree;
  * parent links and child links agree.

A missing child is represented by a nil *Node. All node accessors are safe to
call on nil and report height −1 and size 0 for it.

Mutating operations report the number of rebalancing steps they performed.
A promotion or demotion counts as 1, a single rotation as 2 and a double
rotation as 5.

Trees are not safe for concurrent use. Clients have to serialize access.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package avltree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// TreeError is an error type for the avltree module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrDuplicateKey is flagged when inserting a key which is already present.
// The tree is left unchanged.
const ErrDuplicateKey = TreeError("duplicate key")

// ErrKeyNotFound is flagged when searching or deleting a key which is not
// present in the tree.
const ErrKeyNotFound = TreeError("key not found")

// ErrEmptyTree is flagged when asking an empty tree for an extremal item.
const ErrEmptyTree = TreeError("tree is empty")

// ErrIndexOutOfBounds is flagged whenever a rank index is negative or not
// smaller than the size of the tree.
const ErrIndexOutOfBounds = TreeError("index out of bounds")

// ErrInvariantViolated is wrapped by errors reported from Check.
const ErrInvariantViolated = TreeError("tree invariant violated")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
