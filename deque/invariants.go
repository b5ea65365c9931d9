package deque

import "fmt"

// Check validates the structural invariants of d.
//
// This checker is strict and intended for tests.
func (d *Deque[T]) Check() error {
	if d == nil {
		return fmt.Errorf("%w: nil deque", ErrInvariant)
	}
	if d.m.isNil() {
		if d.start.block != nil || d.finish.block != nil || d.start.node != 0 ||
			d.finish.node != 0 || d.start.off != 0 || d.finish.off != 0 {
			return fmt.Errorf("%w: cursors of a deque without map must be singular", ErrInvariant)
		}
		return nil
	}
	bs := d.m.bsize
	if bs != BlockSize[T]() {
		return fmt.Errorf("%w: block size %d, expected %d", ErrInvariant, bs, BlockSize[T]())
	}
	mapLen := len(d.m.slots)
	if d.start.node < 1 || d.finish.node > mapLen-2 {
		return fmt.Errorf("%w: used slots [%d,%d] leave no spare slot in map of %d",
			ErrInvariant, d.start.node, d.finish.node, mapLen)
	}
	if d.start.node > d.finish.node {
		return fmt.Errorf("%w: start slot %d behind finish slot %d", ErrInvariant,
			d.start.node, d.finish.node)
	}
	if d.start.off < 0 || d.start.off >= bs || d.finish.off < 0 || d.finish.off >= bs {
		return fmt.Errorf("%w: offsets (%d,%d) outside block of %d", ErrInvariant,
			d.start.off, d.finish.off, bs)
	}
	if d.start.node == d.finish.node && d.start.off > d.finish.off {
		return fmt.Errorf("%w: start offset %d behind finish offset %d", ErrInvariant,
			d.start.off, d.finish.off)
	}
	for i, blk := range d.m.slots {
		used := i >= d.start.node && i <= d.finish.node
		if used && blk == nil {
			return fmt.Errorf("%w: slot %d in use but has no block", ErrInvariant, i)
		}
		if !used && blk != nil {
			return fmt.Errorf("%w: slot %d not in use but owns a block", ErrInvariant, i)
		}
		if used && len(blk) != bs {
			return fmt.Errorf("%w: block of slot %d has length %d", ErrInvariant, i, len(blk))
		}
	}
	if &d.start.block[0] != &d.m.slots[d.start.node][0] {
		return fmt.Errorf("%w: start cursor caches a stale block", ErrInvariant)
	}
	if &d.finish.block[0] != &d.m.slots[d.finish.node][0] {
		return fmt.Errorf("%w: finish cursor caches a stale block", ErrInvariant)
	}
	return nil
}
