package tree

// levelBuf is a queue of the nodes of one level of the tree. Two of them are
// used by a level-order walk, one holding the level being visited and one
// collecting the next level; they trade places after each level.
type levelBuf struct {
	s   []*Node
	max int // 0 when unbounded
}

func makeLevelBuf(cfg Config) levelBuf {
	return levelBuf{
		s:   make([]*Node, 0, cfg.LevelBufferCapacity),
		max: cfg.MaxLevelBufferCapacity,
	}
}

// push appends n, doubling the capacity of the buffer when it is full.
func (b *levelBuf) push(n *Node) error {
	if len(b.s) == cap(b.s) {
		if err := b.grow(); err != nil {
			return err
		}
	}
	b.s = append(b.s, n)
	return nil
}

func (b *levelBuf) grow() error {
	c := 2 * cap(b.s)
	if c == 0 {
		c = DefaultLevelBufferCapacity
	}
	if b.max > 0 && c > b.max {
		if cap(b.s) >= b.max {
			return ErrAllocationFailure
		}
		c = b.max
	}
	s := make([]*Node, len(b.s), c)
	copy(s, b.s)
	b.s = s
	return nil
}

func (b *levelBuf) len() int { return len(b.s) }

// reset empties the buffer, keeping its capacity. Dropped entries are
// cleared so that the buffer does not pin released nodes.
func (b *levelBuf) reset() {
	clear(b.s)
	b.s = b.s[:0]
}
