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

package tree

// Delete removes key from the tree rooted at root and returns the new root
// along with the removed entry. If key is absent the tree is left untouched,
// colors included, and ErrKeyNotFound is returned.
//
// The node which held key on entry may survive the call holding a different
// entry: deleting an interior key moves its in-order successor into it.
func Delete(p *Pool, root *Node, key int64) (newRoot *Node, removed Entry, err error) {
	if Get(root, key) == nil {
		return root, Entry{}, ErrKeyNotFound
	}

	// Give the descent a red link to push down when the root is a 2-node.
	if !isRed(root.left) && !isRed(root.right) {
		root.color = red
	}
	var detached *Node
	newRoot = del(root, key, &detached)
	if newRoot != nil {
		newRoot.color = black
	}
	removed = detached.entry()
	p.putNode(detached)
	return newRoot, removed, nil
}

// del removes key, which must be present, from the subtree rooted at n.
// Every step of the descent keeps the current node or its left child red so
// that the node finally spliced out is never the only black link on a path.
func del(n *Node, key int64, detached **Node) *Node {
	if key < n.Key {
		if !isRed(n.left) && !isRed(n.left.left) {
			n = moveRedLeft(n)
		}
		n.left = del(n.left, key, detached)
		return fixUp(n)
	}
	if isRed(n.left) {
		n = rotateRight(n)
	}
	if key == n.Key && n.right == nil {
		// A node without a right child has no left child either, unless
		// the left child is red, which the rotation above ruled out.
		left := n.left
		n.left = nil
		*detached = n
		return left
	}
	if !isRed(n.right) && !isRed(n.right.left) {
		n = moveRedRight(n)
	}
	if key == n.Key {
		// Trade places with the successor. The successor's old node now
		// holds key and is the leftmost node of n.right, which is where the
		// descent below will find and remove it.
		succ := minNode(n.right)
		n.Key, succ.Key = succ.Key, n.Key
		n.Value, succ.Value = succ.Value, n.Value
	}
	n.right = del(n.right, key, detached)
	return fixUp(n)
}

// moveRedLeft makes n.left or one of its children red, borrowing from the
// right sibling when it is a 3-node. n must be red with black children.
func moveRedLeft(n *Node) *Node {
	flipColors(n)
	if n.right != nil && isRed(n.right.left) {
		n.right = rotateRight(n.right)
		n = rotateLeft(n)
		flipColors(n)
	}
	return n
}

// moveRedRight is the mirror of moveRedLeft. The sibling's red link sits on
// its left, so only a single rotation is needed to borrow it.
func moveRedRight(n *Node) *Node {
	flipColors(n)
	if n.left != nil && isRed(n.left.left) {
		n = rotateRight(n)
		flipColors(n)
	}
	return n
}
