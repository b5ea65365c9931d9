package deque

import (
	"fmt"
	"iter"
)

// Resize changes the length of d to n. New elements are zero values appended
// at the back; surplus elements are popped from the back.
func (d *Deque[T]) Resize(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative size %d", ErrInvalidArgument, n)
	}
	var zero T
	for d.Len() < n {
		if err := d.PushBack(zero); err != nil {
			return err
		}
	}
	for d.Len() > n {
		d.PopBack()
	}
	return nil
}

// ResizeWith changes the length of d to n, appending copies of v if d grows.
func (d *Deque[T]) ResizeWith(n int, v T) error {
	if n < 0 {
		return fmt.Errorf("%w: negative size %d", ErrInvalidArgument, n)
	}
	for d.Len() < n {
		if err := d.pushCopy(v, false); err != nil {
			return err
		}
	}
	for d.Len() > n {
		d.PopBack()
	}
	return nil
}

// AssignN replaces the contents of d with n copies of v. The current index
// map is reused if it can hold n elements; otherwise storage is rebuilt for
// exactly n elements.
func (d *Deque[T]) AssignN(n int, v T) error {
	if n < 0 {
		return fmt.Errorf("%w: negative size %d", ErrInvalidArgument, n)
	}
	d.Clear()
	if n > d.capacity() {
		d.releaseStorage(false)
		return d.build(n, func(int) (T, error) { return d.copyValue(v) })
	}
	return d.ResizeWith(n, v)
}

// AssignSlice replaces the contents of d with copies of items.
func (d *Deque[T]) AssignSlice(items ...T) error {
	d.Clear()
	for _, v := range items {
		if err := d.pushCopy(v, false); err != nil {
			return err
		}
	}
	return nil
}

// AssignSeq replaces the contents of d with copies of the values of seq.
func (d *Deque[T]) AssignSeq(seq iter.Seq[T]) error {
	d.Clear()
	for v := range seq {
		if err := d.pushCopy(v, false); err != nil {
			return err
		}
	}
	return nil
}

// ShrinkToFit releases unused storage. An empty deque gives up its index
// map entirely. Otherwise, if more blocks are in use than the length requires
// or the index map is oversized, the elements are moved to compact storage.
// All iterators are invalidated if storage changes.
func (d *Deque[T]) ShrinkToFit() error {
	if d.m.isNil() {
		return nil
	}
	if d.IsEmpty() {
		d.releaseStorage(false)
		return nil
	}
	n := d.Len()
	blocks := d.finish.node - d.start.node + 1
	ideal := n/d.m.bsize + 1
	if blocks == ideal && len(d.m.slots) <= max(minMapLen, ideal+2) {
		return nil
	}
	tmp := d.sibling()
	if err := tmp.createMap(n); err != nil {
		return err
	}
	dst := tmp.start
	src := d.start
	copySpan(&tmp.m, &dst, &d.m, &src, n)
	d.swapStorage(tmp)
	tmp.releaseStorage(false)
	tracer().Debugf("deque: compacted %d elements from %d to %d blocks", n, blocks, ideal)
	return nil
}
