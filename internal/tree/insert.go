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

// Insert sets key to value in the tree rooted at root and returns the new
// root. added is false if key was already present, in which case only its
// value changed. On error the tree is unchanged.
func Insert(p *Pool, root *Node, key, value int64) (newRoot *Node, added bool, err error) {
	if newRoot, added, err = insert(p, root, key, value); err != nil {
		return root, false, err
	}
	newRoot.color = black
	return newRoot, added, nil
}

func insert(p *Pool, n *Node, key, value int64) (_ *Node, added bool, err error) {
	if n == nil {
		if n, err = p.getNode(key, value, red); err != nil {
			return nil, false, err
		}
		return n, true, nil
	}
	switch {
	case key < n.Key:
		var left *Node
		if left, added, err = insert(p, n.left, key, value); err != nil {
			return n, false, err
		}
		n.left = left
	case key > n.Key:
		var right *Node
		if right, added, err = insert(p, n.right, key, value); err != nil {
			return n, false, err
		}
		n.right = right
	default:
		n.Value = value
		return n, false, nil
	}
	return fixUp(n), added, nil
}
