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

import (
	"fmt"
	"iter"
)

// All returns the entries of the tree rooted at root in ascending key order.
// The sequence may be ranged over any number of times but must not be used
// across a mutation of the tree.
func All(root *Node) iter.Seq2[int64, int64] {
	return func(yield func(int64, int64) bool) {
		inOrder(root, yield)
	}
}

func inOrder(n *Node, yield func(int64, int64) bool) bool {
	if n == nil {
		return true
	}
	return inOrder(n.left, yield) &&
		yield(n.Key, n.Value) &&
		inOrder(n.right, yield)
}

// walkLevels calls visit for every node of the tree, level by level from the
// root, left to right within a level. The children of a node are queued
// before visit is called on it, so visit may release the node.
func walkLevels(cfg Config, root *Node, visit func(depth int, n *Node)) error {
	if root == nil {
		return nil
	}
	cur, next := makeLevelBuf(cfg), makeLevelBuf(cfg)
	if err := cur.push(root); err != nil {
		return err
	}
	for depth := 0; cur.len() > 0; depth++ {
		for _, n := range cur.s {
			if n.left != nil {
				if err := next.push(n.left); err != nil {
					return err
				}
			}
			if n.right != nil {
				if err := next.push(n.right); err != nil {
					return err
				}
			}
			visit(depth, n)
		}
		cur.reset()
		cur, next = next, cur
	}
	return nil
}

// LevelOrder returns the entries of the tree grouped by depth. The tree is
// never modified, even when the walk fails.
func LevelOrder(p *Pool, root *Node) ([][]Entry, error) {
	var levels [][]Entry
	if err := walkLevels(p.cfg, root, func(depth int, n *Node) {
		if depth == len(levels) {
			levels = append(levels, nil)
		}
		levels[depth] = append(levels[depth], n.entry())
	}); err != nil {
		return nil, err
	}
	return levels, nil
}

// Release returns every node of the tree to p and reports how many there
// were. If the walk runs out of buffer space part of the tree has already
// been released and the rest is unreachable through root; the returned
// error then wraps both ErrAllocationFailure and ErrPartialRelease.
func Release(p *Pool, root *Node) (released int, err error) {
	if err := walkLevels(p.cfg, root, func(_ int, n *Node) {
		p.putNode(n)
		released++
	}); err != nil {
		return released, fmt.Errorf("%w after %d nodes: %w", ErrPartialRelease, released, err)
	}
	return released, nil
}
