package deque

import (
	"fmt"
	"iter"
	"slices"
)

// InsertAt inserts v at index i, 0 <= i <= Len().
//
// Inserting at either end behaves like PushFront / PushBack. Otherwise the
// shorter side of the sequence is shifted by one position, and all iterators
// are invalidated. On failure d is unchanged.
func (d *Deque[T]) InsertAt(i int, v T) error {
	if i < 0 || i > d.Len() {
		return fmt.Errorf("%w: insert at %d, length %d", ErrIndexOutOfBounds, i, d.Len())
	}
	return d.insertValue(i, v)
}

// EmplaceAt inserts an element created by ctor at index i. If ctor fails, d is
// unchanged. If storage cannot be acquired, the created element is destroyed.
func (d *Deque[T]) EmplaceAt(i int, ctor func() (T, error)) error {
	if i < 0 || i > d.Len() {
		return fmt.Errorf("%w: insert at %d, length %d", ErrIndexOutOfBounds, i, d.Len())
	}
	v, err := ctor()
	if err != nil {
		return err
	}
	if err := d.insertValue(i, v); err != nil {
		d.destroy(&v)
		return err
	}
	return nil
}

// Insert inserts v in front of pos and returns an iterator to the new
// element. pos must be an iterator of d.
func (d *Deque[T]) Insert(pos Iterator[T], v T) (Iterator[T], error) {
	assert(pos.d == d, "deque: Insert with iterator of another deque")
	i := pos.Index()
	if err := d.insertValue(i, v); err != nil {
		return pos, err
	}
	return d.Begin().Add(i), nil
}

func (d *Deque[T]) insertValue(i int, v T) error {
	n := d.Len()
	if i == 0 {
		return d.PushFront(v)
	}
	if i == n {
		return d.PushBack(v)
	}
	if i < n/2 {
		// Duplicate the first element into a new front slot, then shift
		// [1, i+1) one position to the front.
		if err := d.PushFront(*d.start.ref()); err != nil {
			return err
		}
		src := d.start.add(&d.m, 1)
		dst := d.start
		copySpan(&d.m, &dst, &d.m, &src, i)
		*dst.ref() = v
		return nil
	}
	// Duplicate the last element into a new back slot, then shift
	// [i, n-1) one position to the back.
	last := d.finish
	last.dec(&d.m)
	if err := d.PushBack(*last.ref()); err != nil {
		return err
	}
	dlast := d.finish.add(&d.m, -1)
	from := dlast.add(&d.m, -1)
	copySpanBackward(&d.m, &dlast, &from, n-1-i)
	*d.Ref(i) = v
	return nil
}

// InsertN inserts count copies of v at index i.
//
// At either end this is done by repeated pushes: if a push fails, the copies
// inserted so far remain. In the interior a new sequence is built and swapped
// in, so d is unchanged on failure. All iterators are invalidated.
func (d *Deque[T]) InsertN(i, count int, v T) error {
	if i < 0 || i > d.Len() {
		return fmt.Errorf("%w: insert at %d, length %d", ErrIndexOutOfBounds, i, d.Len())
	}
	if count < 0 {
		return fmt.Errorf("%w: negative count %d", ErrInvalidArgument, count)
	}
	if count == 0 {
		return nil
	}
	n := d.Len()
	switch i {
	case 0:
		for k := 0; k < count; k++ {
			if err := d.pushCopy(v, true); err != nil {
				return err
			}
		}
		return nil
	case n:
		for k := 0; k < count; k++ {
			if err := d.pushCopy(v, false); err != nil {
				return err
			}
		}
		return nil
	}
	return d.insertRebuild(i, count, func(int) (T, error) { return d.copyValue(v) })
}

// InsertSlice inserts copies of items at index i, preserving their order.
// Failure guarantees are the same as for InsertN.
func (d *Deque[T]) InsertSlice(i int, items ...T) error {
	if i < 0 || i > d.Len() {
		return fmt.Errorf("%w: insert at %d, length %d", ErrIndexOutOfBounds, i, d.Len())
	}
	if len(items) == 0 {
		return nil
	}
	n := d.Len()
	switch i {
	case 0:
		for k := len(items) - 1; k >= 0; k-- {
			if err := d.pushCopy(items[k], true); err != nil {
				return err
			}
		}
		return nil
	case n:
		for _, v := range items {
			if err := d.pushCopy(v, false); err != nil {
				return err
			}
		}
		return nil
	}
	return d.insertRebuild(i, len(items), func(k int) (T, error) { return d.copyValue(items[k]) })
}

// InsertSeq inserts copies of the values produced by seq at index i. seq is
// drained before d is modified.
func (d *Deque[T]) InsertSeq(i int, seq iter.Seq[T]) error {
	return d.InsertSlice(i, slices.Collect(seq)...)
}

func (d *Deque[T]) pushCopy(v T, front bool) error {
	c, err := d.copyValue(v)
	if err != nil {
		return err
	}
	if front {
		err = d.PushFront(c)
	} else {
		err = d.PushBack(c)
	}
	if err != nil {
		d.destroy(&c)
	}
	return err
}

// insertRebuild builds a new sequence of Len()+count elements: the elements
// of d in front of i, count elements from gen, the remaining elements of d.
// On success the new sequence replaces d; on failure d is unchanged.
func (d *Deque[T]) insertRebuild(i, count int, gen func(int) (T, error)) error {
	n := d.Len()
	tmp := d.sibling()
	if err := tmp.createMap(n + count); err != nil {
		return err
	}
	dst := tmp.start
	src := d.start
	copySpan(&tmp.m, &dst, &d.m, &src, i)
	fillStart := dst
	for k := 0; k < count; k++ {
		v, err := gen(k)
		if err != nil {
			tmp.destroyRange(fillStart, dst)
			tmp.releaseStorage(false)
			tracer().Debugf("deque: insert of %d elements rolled back after %d", count, k)
			return err
		}
		*dst.ref() = v
		dst.inc(&tmp.m)
	}
	copySpan(&tmp.m, &dst, &d.m, &src, n-i)
	d.swapStorage(tmp)
	tmp.releaseStorage(false) // elements have been moved
	return nil
}
