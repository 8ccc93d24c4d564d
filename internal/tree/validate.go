package tree

import (
	"fmt"
	"math"
)

// Validate checks the ordering and balance rules of the tree rooted at root
// and that it holds exactly count nodes. The returned error wraps
// ErrInvariant.
func Validate(root *Node, count int) error {
	if isRed(root) {
		return fmt.Errorf("%w: root %d is red", ErrInvariant, root.Key)
	}
	n, _, err := validate(root, math.MinInt64, math.MaxInt64, false /* loSet */, false /* hiSet */)
	if err != nil {
		return err
	}
	if n != count {
		return fmt.Errorf("%w: counted %d nodes, expected %d", ErrInvariant, n, count)
	}
	return nil
}

// validate returns the number of nodes below and including n and the black
// height of n. lo and hi are exclusive bounds on the keys of the subtree and
// only apply once the matching flag is set.
func validate(n *Node, lo, hi int64, loSet, hiSet bool) (count, blacks int, err error) {
	if n == nil {
		return 0, 0, nil
	}
	if (loSet && n.Key <= lo) || (hiSet && n.Key >= hi) {
		return 0, 0, fmt.Errorf("%w: key %d out of order", ErrInvariant, n.Key)
	}
	if isRed(n.right) {
		return 0, 0, fmt.Errorf("%w: node %d has a red right child", ErrInvariant, n.Key)
	}
	if isRed(n) && isRed(n.left) {
		return 0, 0, fmt.Errorf("%w: consecutive red links at %d", ErrInvariant, n.Key)
	}
	lc, lb, err := validate(n.left, lo, n.Key, loSet, true)
	if err != nil {
		return 0, 0, err
	}
	rc, rb, err := validate(n.right, n.Key, hi, true, hiSet)
	if err != nil {
		return 0, 0, err
	}
	if lb != rb {
		return 0, 0, fmt.Errorf("%w: unbalanced black height {%d,%d} at %d", ErrInvariant, lb, rb, n.Key)
	}
	if !isRed(n) {
		lb++
	}
	return lc + rc + 1, lb, nil
}
