package deque

import "fmt"

// DeleteAt removes the element at index i.
//
// The shorter side of the sequence is shifted to close the gap. Removing the
// first or last element only invalidates iterators to it (and end iterators);
// otherwise all iterators are invalidated.
func (d *Deque[T]) DeleteAt(i int) error {
	if i < 0 || i >= d.Len() {
		return fmt.Errorf("%w: delete at %d, length %d", ErrIndexOutOfBounds, i, d.Len())
	}
	d.eraseAt(i)
	return nil
}

// DeleteRange removes the elements in [i, j).
func (d *Deque[T]) DeleteRange(i, j int) error {
	if i < 0 || j < i || j > d.Len() {
		return fmt.Errorf("%w: delete [%d,%d), length %d", ErrIndexOutOfBounds, i, j, d.Len())
	}
	d.eraseRange(i, j)
	return nil
}

// Erase removes the element at pos and returns an iterator to the element
// following it. pos must be a dereferenceable iterator of d.
func (d *Deque[T]) Erase(pos Iterator[T]) Iterator[T] {
	assert(pos.d == d, "deque: Erase with iterator of another deque")
	i := pos.Index()
	assert(i >= 0 && i < d.Len(), "deque: Erase at invalid position")
	d.eraseAt(i)
	return d.Begin().Add(i)
}

// EraseRange removes the elements in [first, last) and returns an iterator
// to the element following the removed range.
func (d *Deque[T]) EraseRange(first, last Iterator[T]) Iterator[T] {
	assert(first.d == d && last.d == d, "deque: EraseRange with iterators of another deque")
	i, j := first.Index(), last.Index()
	assert(0 <= i && i <= j && j <= d.Len(), "deque: EraseRange with invalid range")
	d.eraseRange(i, j)
	return d.Begin().Add(i)
}

func (d *Deque[T]) eraseAt(i int) {
	n := d.Len()
	p := d.start.add(&d.m, i)
	d.destroy(p.ref())
	if i < n/2 {
		// Shift [0, i) one position to the back.
		dlast := p.add(&d.m, 1)
		copySpanBackward(&d.m, &dlast, &p, i)
		d.retractFront(false)
		return
	}
	// Shift [i+1, n) one position to the front.
	src := p.add(&d.m, 1)
	copySpan(&d.m, &p, &d.m, &src, n-i-1)
	d.retractBack(false)
}

func (d *Deque[T]) eraseRange(i, j int) {
	if i == j {
		return
	}
	n := d.Len()
	if i == 0 && j == n {
		d.Clear()
		return
	}
	count := j - i
	f := d.start.add(&d.m, i)
	l := f.add(&d.m, count)
	d.destroyRange(f, l)
	a := d.allocator()
	if i < n-j {
		// Shift [0, i) to [count, j), then drop the leading count slots.
		copySpanBackward(&d.m, &l, &f, i)
		newStart := d.start.add(&d.m, count)
		d.vacateRange(d.start, newStart)
		for node := d.start.node; node < newStart.node; node++ {
			d.m.freeBlock(a, node)
		}
		d.start = newStart
		return
	}
	// Shift [j, n) to [i, n-count), then drop the trailing count slots.
	copySpan(&d.m, &f, &d.m, &l, n-j)
	newFinish := d.finish.add(&d.m, -count)
	d.vacateRange(newFinish, d.finish)
	for node := newFinish.node + 1; node <= d.finish.node; node++ {
		d.m.freeBlock(a, node)
	}
	d.finish = newFinish
}
