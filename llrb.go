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

// Package llrb provides an ordered map from int64 keys to int64 values
// backed by a left-leaning red-black tree.
//
// A Tree is not safe for concurrent use. Callers sharing a Tree between
// goroutines must serialize every operation, reads included, under a single
// lock.
package llrb

import (
	"iter"

	"github.com/ajwerner/llrb/internal/tree"
)

// Entry is a key-value pair stored in a Tree.
type Entry = tree.Entry

// Config bounds the memory used by a Tree. The zero value is unbounded.
type Config = tree.Config

// Errors returned by Tree operations. Test for them with errors.Is.
var (
	ErrAllocationFailure = tree.ErrAllocationFailure
	ErrKeyNotFound       = tree.ErrKeyNotFound
	ErrPartialRelease    = tree.ErrPartialRelease
	ErrInvariant         = tree.ErrInvariant
)

// DefaultConfig returns a Config with no limits and level buffers of the
// default initial capacity.
func DefaultConfig() Config {
	return Config{LevelBufferCapacity: tree.DefaultLevelBufferCapacity}
}

// Tree is an ordered map from int64 to int64.
type Tree struct {
	root   *tree.Node
	length int
	p      *tree.Pool
}

// New returns an empty Tree.
func New(cfg Config) *Tree {
	return &Tree{p: tree.NewPool(cfg)}
}

// Init returns a Tree holding the single entry (key, value).
func Init(cfg Config, key, value int64) (*Tree, error) {
	t := New(cfg)
	root, err := tree.NewRoot(t.p, key, value)
	if err != nil {
		return nil, err
	}
	t.root, t.length = root, 1
	return t, nil
}

// Len returns the number of entries in the Tree.
func (t *Tree) Len() int { return t.length }

// Live returns the number of nodes allocated to the Tree and not yet
// released. It equals Len except after a failed Release.
func (t *Tree) Live() int { return t.p.Live() }

// Height returns the number of nodes on the longest path from the root.
func (t *Tree) Height() int { return tree.Height(t.root) }

// Insert sets key to value, overwriting any previous value. It reports
// whether a new entry was added. On error the Tree is unchanged.
func (t *Tree) Insert(key, value int64) (added bool, err error) {
	if t.root, added, err = tree.Insert(t.p, t.root, key, value); err != nil {
		return false, err
	}
	if added {
		t.length++
	}
	return added, nil
}

// Search returns the value stored under key.
func (t *Tree) Search(key int64) (int64, error) {
	return tree.Search(t.root, key)
}

// Delete removes key and returns the removed value.
func (t *Tree) Delete(key int64) (int64, error) {
	root, removed, err := tree.Delete(t.p, t.root, key)
	if err != nil {
		return 0, err
	}
	t.root = root
	t.length--
	return removed.Value, nil
}

// All returns the entries in ascending key order.
func (t *Tree) All() iter.Seq2[int64, int64] {
	return tree.All(t.root)
}

// LevelOrder returns the entries grouped by depth, the root first and each
// level ordered left to right.
func (t *Tree) LevelOrder() ([][]Entry, error) {
	return tree.LevelOrder(t.p, t.root)
}

// Release frees every node of the Tree, leaving it empty. If Release fails
// with ErrPartialRelease the Tree is left empty but some of its nodes were
// never released and Live reports how many.
func (t *Tree) Release() error {
	root := t.root
	t.root, t.length = nil, 0
	_, err := tree.Release(t.p, root)
	return err
}

// Validate checks the structural invariants of the Tree.
func (t *Tree) Validate() error {
	return tree.Validate(t.root, t.length)
}
