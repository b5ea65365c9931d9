package deque

// cursor is a position inside a deque: a slot of the index map and an offset
// inside that slot's block. The block reference is cached to avoid a map
// lookup on every access.
//
// off is always in [0, bsize). A cursor one past the last element sits at
// offset 0 of the following slot.
type cursor[T any] struct {
	node  int
	off   int
	block []T
}

func (c *cursor[T]) setNode(m *indexMap[T], node int) {
	c.node = node
	if node >= 0 && node < len(m.slots) {
		c.block = m.slots[node]
	} else {
		c.block = nil
	}
}

func (c *cursor[T]) ref() *T {
	return &c.block[c.off]
}

func (c *cursor[T]) inc(m *indexMap[T]) {
	c.off++
	if c.off == m.bsize {
		c.setNode(m, c.node+1)
		c.off = 0
	}
}

func (c *cursor[T]) dec(m *indexMap[T]) {
	if c.off == 0 {
		c.setNode(m, c.node-1)
		c.off = m.bsize
	}
	c.off--
}

// advance moves the cursor by n positions, which may be negative.
func (c *cursor[T]) advance(m *indexMap[T], n int) {
	bs := m.bsize
	offset := c.off + n
	if offset >= 0 && offset < bs {
		c.off = offset
		return
	}
	var nodeOffset int
	if offset > 0 {
		nodeOffset = offset / bs
	} else {
		nodeOffset = -((-offset - 1) / bs) - 1
	}
	c.setNode(m, c.node+nodeOffset)
	c.off = offset - nodeOffset*bs
}

func (c cursor[T]) add(m *indexMap[T], n int) cursor[T] {
	c.advance(m, n)
	return c
}

func (c cursor[T]) equal(o cursor[T]) bool {
	return c.node == o.node && c.off == o.off
}

func (c cursor[T]) less(o cursor[T]) bool {
	if c.node != o.node {
		return c.node < o.node
	}
	return c.off < o.off
}

// distance returns x - y in elements.
func distance[T any](bsize int, x, y cursor[T]) int {
	if x.node == y.node {
		return x.off - y.off
	}
	return bsize*(x.node-y.node-1) + x.off + (bsize - y.off)
}

// copySpan copies n elements from src (in map sm) to dst (in map dm), one
// contiguous block segment at a time, and advances both cursors. Within a
// single map, dst must not lie behind src if the ranges overlap.
func copySpan[T any](dm *indexMap[T], dst *cursor[T], sm *indexMap[T], src *cursor[T], n int) {
	for n > 0 {
		k := min(n, sm.bsize-src.off, dm.bsize-dst.off)
		copy(dst.block[dst.off:dst.off+k], src.block[src.off:src.off+k])
		src.advance(sm, k)
		dst.advance(dm, k)
		n -= k
	}
}

// copySpanBackward copies the n elements in front of last to the n positions
// in front of dlast, starting with the last element. Both cursors end up at
// the beginning of their ranges. If the ranges overlap, dlast must not lie in
// front of last.
func copySpanBackward[T any](m *indexMap[T], dlast *cursor[T], last *cursor[T], n int) {
	for n > 0 {
		lo, do := last.off, dlast.off
		if lo == 0 {
			lo = m.bsize
		}
		if do == 0 {
			do = m.bsize
		}
		k := min(n, lo, do)
		last.advance(m, -k)
		dlast.advance(m, -k)
		copy(dlast.block[dlast.off:dlast.off+k], last.block[last.off:last.off+k])
		n -= k
	}
}
