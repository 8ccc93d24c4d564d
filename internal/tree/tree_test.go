package tree

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(root *Node) []Entry {
	var got []Entry
	for k, v := range All(root) {
		got = append(got, Entry{Key: k, Value: v})
	}
	return got
}

func mustInsert(t *testing.T, p *Pool, root *Node, key, value int64) *Node {
	t.Helper()
	root, _, err := Insert(p, root, key, value)
	require.NoError(t, err)
	return root
}

func TestInsertAscending(t *testing.T) {
	p := NewPool(Config{})
	var root *Node
	for k := int64(1); k <= 3; k++ {
		root = mustInsert(t, p, root, k, k)
	}
	require.NoError(t, Validate(root, 3))

	levels, err := LevelOrder(p, root)
	require.NoError(t, err)
	require.Equal(t, [][]Entry{
		{{2, 2}},
		{{1, 1}, {3, 3}},
	}, levels)
}

func TestInsertDuplicate(t *testing.T) {
	p := NewPool(Config{})
	var root *Node
	var added bool
	var err error
	for _, e := range []Entry{{10, 1}, {5, 2}, {20, 3}} {
		root, added, err = Insert(p, root, e.Key, e.Value)
		require.NoError(t, err)
		require.True(t, added)
	}
	root, added, err = Insert(p, root, 5, 4)
	require.NoError(t, err)
	require.False(t, added)

	require.NoError(t, Validate(root, 3))
	require.Equal(t, 3, p.Live())
	v, err := Search(root, 5)
	require.NoError(t, err)
	require.Equal(t, int64(4), v)
	require.Equal(t, []Entry{{5, 4}, {10, 1}, {20, 3}}, collect(root))
}

func TestInsertAllocationFailure(t *testing.T) {
	p := NewPool(Config{MaxNodes: 2})
	var root *Node
	root = mustInsert(t, p, root, 1, 1)
	root = mustInsert(t, p, root, 2, 2)
	before := collect(root)

	got, added, err := Insert(p, root, 3, 3)
	require.ErrorIs(t, err, ErrAllocationFailure)
	require.False(t, added)
	require.Same(t, root, got)
	require.NoError(t, Validate(root, 2))
	require.Equal(t, before, collect(root))

	// Overwrites need no allocation.
	root = mustInsert(t, p, root, 1, 10)
	v, err := Search(root, 1)
	require.NoError(t, err)
	require.Equal(t, int64(10), v)

	empty, _, err := Insert(NewPool(Config{MaxNodes: -1}), nil, 1, 1)
	require.NoError(t, err, "negative budgets are unbounded")
	require.NotNil(t, empty)
}

func TestSearch(t *testing.T) {
	_, err := Search(nil, 1)
	require.ErrorIs(t, err, ErrKeyNotFound)

	p := NewPool(Config{})
	root, err := NewRoot(p, 7, 70)
	require.NoError(t, err)
	require.False(t, root.IsRed())

	v, err := Search(root, 7)
	require.NoError(t, err)
	require.Equal(t, int64(70), v)
	_, err = Search(root, 8)
	require.ErrorIs(t, err, ErrKeyNotFound)
}

func TestDeleteSingleton(t *testing.T) {
	p := NewPool(Config{})
	root, err := NewRoot(p, 1, 10)
	require.NoError(t, err)

	root, removed, err := Delete(p, root, 1)
	require.NoError(t, err)
	require.Nil(t, root)
	require.Equal(t, Entry{1, 10}, removed)
	require.Zero(t, p.Live())

	_, _, err = Delete(p, nil, 1)
	require.ErrorIs(t, err, ErrKeyNotFound)
}

func TestDeleteMissingLeavesTreeIntact(t *testing.T) {
	p := NewPool(Config{})
	var root *Node
	for k := int64(0); k < 64; k += 2 {
		root = mustInsert(t, p, root, k, -k)
	}
	before, err := LevelOrder(p, root)
	require.NoError(t, err)

	for _, k := range []int64{-1, 1, 31, 63, 64} {
		got, _, err := Delete(p, root, k)
		require.ErrorIs(t, err, ErrKeyNotFound)
		require.Same(t, root, got)
		require.NoError(t, Validate(root, 32))
		after, err := LevelOrder(p, root)
		require.NoError(t, err)
		require.Equal(t, before, after)
	}
}

func TestDeleteInterior(t *testing.T) {
	p := NewPool(Config{})
	var root *Node
	for k := int64(1); k <= 7; k++ {
		root = mustInsert(t, p, root, k, k*100)
	}
	key := root.Key
	root, removed, err := Delete(p, root, key)
	require.NoError(t, err)
	require.Equal(t, Entry{key, key * 100}, removed)
	require.NoError(t, Validate(root, 6))
	_, err = Search(root, key)
	require.ErrorIs(t, err, ErrKeyNotFound)
	for k := int64(1); k <= 7; k++ {
		if k == key {
			continue
		}
		v, err := Search(root, k)
		require.NoError(t, err)
		require.Equal(t, k*100, v)
	}
}

// TestRandomized inserts and deletes random permutations, checking every
// invariant after each mutation.
func TestRandomized(t *testing.T) {
	t.Parallel()
	const maxN = 500
	for seed := int64(0); seed < 8; seed++ {
		rng := rand.New(rand.NewSource(seed))
		N := rng.Intn(maxN) + 1
		p := NewPool(Config{})
		var root *Node
		for i, k := range rng.Perm(N) {
			root = mustInsert(t, p, root, int64(k), int64(k)*3)
			require.NoError(t, Validate(root, i+1), "seed %d insert %d", seed, k)
		}
		keys := make([]int64, 0, N)
		for k, v := range All(root) {
			require.Equal(t, k*3, v)
			keys = append(keys, k)
		}
		require.True(t, slices.IsSorted(keys))
		require.Len(t, keys, N)

		remaining := N
		for _, k := range rng.Perm(N) {
			var removed Entry
			var err error
			root, removed, err = Delete(p, root, int64(k))
			require.NoError(t, err)
			require.Equal(t, Entry{int64(k), int64(k) * 3}, removed)
			remaining--
			require.NoError(t, Validate(root, remaining), "seed %d delete %d", seed, k)
			_, err = Search(root, int64(k))
			require.ErrorIs(t, err, ErrKeyNotFound)
		}
		require.Nil(t, root)
		require.Zero(t, p.Live())
	}
}

func TestMixedOperations(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(42))
	p := NewPool(Config{})
	var root *Node
	ref := map[int64]int64{}
	for i := 0; i < 5000; i++ {
		k := int64(rng.Intn(300)) - 150
		if rng.Float64() < .6 {
			v := rng.Int63()
			root = mustInsert(t, p, root, k, v)
			ref[k] = v
		} else {
			var err error
			var removed Entry
			root, removed, err = Delete(p, root, k)
			if exp, ok := ref[k]; ok {
				require.NoError(t, err)
				require.Equal(t, exp, removed.Value)
				delete(ref, k)
			} else {
				require.ErrorIs(t, err, ErrKeyNotFound)
			}
		}
		require.NoError(t, Validate(root, len(ref)))
	}
	require.Equal(t, len(ref), p.Live())
	for k, v := range All(root) {
		assert.Equal(t, ref[k], v)
	}
}

func TestHeightIsLogarithmic(t *testing.T) {
	p := NewPool(Config{})
	var root *Node
	for k := int64(0); k < 1<<12; k++ {
		root = mustInsert(t, p, root, k, k)
	}
	require.Zero(t, Height(nil))
	// A left-leaning red-black tree is never more than twice as tall as a
	// perfectly balanced one.
	require.LessOrEqual(t, Height(root), 2*12)
}

func TestAllStopsEarly(t *testing.T) {
	p := NewPool(Config{})
	var root *Node
	for k := int64(0); k < 100; k++ {
		root = mustInsert(t, p, root, k, k)
	}
	var got []int64
	for k := range All(root) {
		if k == 3 {
			break
		}
		got = append(got, k)
	}
	require.Equal(t, []int64{0, 1, 2}, got)

	// The sequence can be replayed.
	require.Len(t, collect(root), 100)
	require.Empty(t, collect(nil))
}

func TestValidateDetectsViolations(t *testing.T) {
	for _, tc := range []struct {
		name string
		root *Node
		n    int
	}{
		{"red root", &Node{Key: 1, color: red}, 1},
		{"red right child", &Node{Key: 1, right: &Node{Key: 2, color: red}}, 2},
		{"consecutive reds", &Node{Key: 3, left: &Node{Key: 2, color: red,
			left: &Node{Key: 1, color: red}}}, 3},
		{"black height", &Node{Key: 2, left: &Node{Key: 1}}, 2},
		{"order", &Node{Key: 5, left: &Node{Key: 7, color: red}}, 2},
		{"deep order", &Node{Key: 10,
			left:  &Node{Key: 5, right: &Node{Key: 12}, left: &Node{Key: 1}},
			right: &Node{Key: 20, left: &Node{Key: 15}, right: &Node{Key: 25}}}, 7},
		{"count", &Node{Key: 1}, 2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.root, tc.n)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvariant), err)
		})
	}
	require.NoError(t, Validate(nil, 0))
}
