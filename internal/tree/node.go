// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package tree implements a left-leaning red-black tree over int64 keys
// and values. The exported functions operate on a root *Node which is owned
// by the caller; every other node is owned by exactly one parent link.
package tree

const (
	red   = true
	black = false
)

// Node is a single entry of the tree. The color of a node describes the
// link from its parent: a red node is glued to its parent as part of a
// 3-node of the equivalent 2-3 tree.
type Node struct {
	Key   int64
	Value int64

	color       bool
	left, right *Node
}

// Entry is a key-value pair produced by traversals and deletion.
type Entry struct {
	Key   int64
	Value int64
}

func (n *Node) entry() Entry {
	return Entry{Key: n.Key, Value: n.Value}
}

// IsRed reports whether the link into n is red. Absent nodes are black.
func (n *Node) IsRed() bool {
	return isRed(n)
}

// Left returns the left child of n.
func (n *Node) Left() *Node { return n.left }

// Right returns the right child of n.
func (n *Node) Right() *Node { return n.right }

func isRed(n *Node) bool {
	return n != nil && n.color == red
}

// rotateLeft turns a red right link of n into a left link and returns the
// new subtree root. It is a no-op if n or its right child is absent.
func rotateLeft(n *Node) *Node {
	if n == nil || n.right == nil {
		return n
	}
	x := n.right
	n.right = x.left
	x.left = n
	x.color = n.color
	n.color = red
	return x
}

// rotateRight is the mirror of rotateLeft.
func rotateRight(n *Node) *Node {
	if n == nil || n.left == nil {
		return n
	}
	x := n.left
	n.left = x.right
	x.right = n
	x.color = n.color
	n.color = red
	return x
}

// flipColors splits (or, when used on the way down a deletion, merges) the
// 4-node rooted at n.
func flipColors(n *Node) {
	n.color = !n.color
	if n.left != nil {
		n.left.color = !n.left.color
	}
	if n.right != nil {
		n.right.color = !n.right.color
	}
}

// fixUp restores the left-leaning shape of n on the way back up from an
// insertion or a deletion.
func fixUp(n *Node) *Node {
	if isRed(n.right) && !isRed(n.left) {
		n = rotateLeft(n)
	}
	if isRed(n.left) && isRed(n.left.left) {
		n = rotateRight(n)
	}
	if isRed(n.left) && isRed(n.right) {
		flipColors(n)
	}
	return n
}
