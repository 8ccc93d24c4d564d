package tree

// Get returns the node holding key, or nil.
func Get(root *Node, key int64) *Node {
	for n := root; n != nil; {
		switch {
		case key < n.Key:
			n = n.left
		case key > n.Key:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Search returns the value stored under key.
func Search(root *Node, key int64) (int64, error) {
	if n := Get(root, key); n != nil {
		return n.Value, nil
	}
	return 0, ErrKeyNotFound
}

func minNode(n *Node) *Node {
	for n.left != nil {
		n = n.left
	}
	return n
}

// Height returns the number of nodes on the longest root-to-leaf path.
func Height(n *Node) int {
	if n == nil {
		return 0
	}
	return 1 + max(Height(n.left), Height(n.right))
}
