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

import "sync"

// DefaultLevelBufferCapacity is the initial capacity of each of the two
// buffers used by level-order walks.
const DefaultLevelBufferCapacity = 16

// Config bounds the memory a tree may use.
type Config struct {

	// MaxNodes is the number of nodes which may be live at once. Zero means
	// unbounded.
	MaxNodes int

	// LevelBufferCapacity is the initial capacity of the level buffers.
	// Values below 1 select DefaultLevelBufferCapacity.
	LevelBufferCapacity int

	// MaxLevelBufferCapacity bounds the growth of a level buffer. Zero means
	// unbounded.
	MaxLevelBufferCapacity int
}

// nodePool is shared by every Pool. Released nodes are zeroed before they
// are put back so that a recycled node never carries stale links.
var nodePool = sync.Pool{
	New: func() interface{} {
		return new(Node)
	},
}

// Pool hands out and takes back nodes for a single tree and tracks how many
// of them are live. It is not safe for concurrent use.
type Pool struct {
	cfg  Config
	live int
}

// NewPool returns a pool honoring the limits in cfg.
func NewPool(cfg Config) *Pool {
	if cfg.LevelBufferCapacity < 1 {
		cfg.LevelBufferCapacity = DefaultLevelBufferCapacity
	}
	if cfg.MaxLevelBufferCapacity > 0 && cfg.LevelBufferCapacity > cfg.MaxLevelBufferCapacity {
		cfg.LevelBufferCapacity = cfg.MaxLevelBufferCapacity
	}
	return &Pool{cfg: cfg}
}

// Live returns the number of nodes handed out and not yet released.
func (p *Pool) Live() int { return p.live }

func (p *Pool) getNode(key, value int64, color bool) (*Node, error) {
	if p.cfg.MaxNodes > 0 && p.live >= p.cfg.MaxNodes {
		return nil, ErrAllocationFailure
	}
	n := nodePool.Get().(*Node)
	n.Key, n.Value, n.color = key, value, color
	p.live++
	return n, nil
}

// putNode releases n. The caller must have detached n from its children or
// captured them already; n is zeroed here.
func (p *Pool) putNode(n *Node) {
	*n = Node{}
	p.live--
	nodePool.Put(n)
}

// NewRoot allocates a singleton black root.
func NewRoot(p *Pool, key, value int64) (*Node, error) {
	return p.getNode(key, value, black)
}
