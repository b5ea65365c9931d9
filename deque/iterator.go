package deque

import "iter"

// Iterator is a random-access position in a deque.
//
// Iterators are values; copying one yields an independent position. An
// iterator is bound to the deque that created it and becomes invalid as
// documented for the mutating operations of Deque.
type Iterator[T any] struct {
	d *Deque[T]
	c cursor[T]
}

// Begin returns an iterator to the first element.
func (d *Deque[T]) Begin() Iterator[T] {
	return Iterator[T]{d: d, c: d.start}
}

// End returns an iterator one past the last element.
func (d *Deque[T]) End() Iterator[T] {
	return Iterator[T]{d: d, c: d.finish}
}

// Value returns the element at the iterator position.
func (it Iterator[T]) Value() T {
	return *it.c.ref()
}

// Ref returns a pointer to the element at the iterator position.
func (it Iterator[T]) Ref() *T {
	return it.c.ref()
}

// Set overwrites the element at the iterator position. The previous element
// is destroyed.
func (it Iterator[T]) Set(v T) {
	p := it.c.ref()
	it.d.destroy(p)
	*p = v
}

// At returns the element n positions away from the iterator.
func (it Iterator[T]) At(n int) T {
	c := it.c.add(&it.d.m, n)
	return *c.ref()
}

// Next moves the iterator one position to the back.
func (it *Iterator[T]) Next() {
	it.c.inc(&it.d.m)
}

// Prev moves the iterator one position to the front.
func (it *Iterator[T]) Prev() {
	it.c.dec(&it.d.m)
}

// Advance moves the iterator by n positions; n may be negative.
func (it *Iterator[T]) Advance(n int) {
	it.c.advance(&it.d.m, n)
}

// Add returns an iterator n positions away.
func (it Iterator[T]) Add(n int) Iterator[T] {
	if n == 0 {
		return it
	}
	it.c.advance(&it.d.m, n)
	return it
}

// Sub returns the distance it - o in elements. Both iterators must belong to
// the same deque.
func (it Iterator[T]) Sub(o Iterator[T]) int {
	assert(it.d == o.d, "deque: distance between iterators of different deques")
	if it.d.m.isNil() {
		return 0
	}
	return distance(it.d.m.bsize, it.c, o.c)
}

// Index returns the position of it relative to the first element.
func (it Iterator[T]) Index() int {
	return it.Sub(it.d.Begin())
}

// Equal reports whether it and o denote the same position.
func (it Iterator[T]) Equal(o Iterator[T]) bool {
	return it.d == o.d && it.c.equal(o.c)
}

// Less reports whether it is in front of o.
func (it Iterator[T]) Less(o Iterator[T]) bool {
	assert(it.d == o.d, "deque: comparing iterators of different deques")
	return it.c.less(o.c)
}

// Compare returns -1, 0 or +1 depending on whether it is in front of, equal
// to or behind o.
func (it Iterator[T]) Compare(o Iterator[T]) int {
	assert(it.d == o.d, "deque: comparing iterators of different deques")
	switch {
	case it.c.less(o.c):
		return -1
	case o.c.less(it.c):
		return 1
	}
	return 0
}

// Valid reports whether it points to an element of its deque.
func (it Iterator[T]) Valid() bool {
	if it.d == nil || it.d.m.isNil() {
		return false
	}
	return !it.c.less(it.d.start) && it.c.less(it.d.finish)
}

// --- Reverse iteration -----------------------------------------------------

// ReverseIterator walks a deque from back to front. It wraps a base iterator
// and refers to the element in front of the base position.
type ReverseIterator[T any] struct {
	base Iterator[T]
}

// RBegin returns a reverse iterator to the last element.
func (d *Deque[T]) RBegin() ReverseIterator[T] {
	return ReverseIterator[T]{base: d.End()}
}

// REnd returns a reverse iterator one before the first element.
func (d *Deque[T]) REnd() ReverseIterator[T] {
	return ReverseIterator[T]{base: d.Begin()}
}

// Base returns the underlying iterator, which points one element behind the
// element the reverse iterator refers to.
func (r ReverseIterator[T]) Base() Iterator[T] {
	return r.base
}

// Value returns the element the reverse iterator refers to.
func (r ReverseIterator[T]) Value() T {
	return r.base.At(-1)
}

// Next moves towards the front of the deque.
func (r *ReverseIterator[T]) Next() {
	r.base.Prev()
}

// Prev moves towards the back of the deque.
func (r *ReverseIterator[T]) Prev() {
	r.base.Next()
}

// Advance moves by n positions towards the front.
func (r *ReverseIterator[T]) Advance(n int) {
	r.base.Advance(-n)
}

// Equal reports whether r and o denote the same position.
func (r ReverseIterator[T]) Equal(o ReverseIterator[T]) bool {
	return r.base.Equal(o.base)
}

// --- Range functions -------------------------------------------------------

// All returns an iterator over index/element pairs, front to back.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if d.IsEmpty() {
			return
		}
		i := 0
		for c := d.start; !c.equal(d.finish); c.inc(&d.m) {
			if !yield(i, *c.ref()) {
				return
			}
			i++
		}
	}
}

// Backward returns an iterator over index/element pairs, back to front.
func (d *Deque[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if d.IsEmpty() {
			return
		}
		i := d.Len() - 1
		c := d.finish
		for !c.equal(d.start) {
			c.dec(&d.m)
			if !yield(i, *c.ref()) {
				return
			}
			i--
		}
	}
}

// Values returns an iterator over the elements, front to back.
func (d *Deque[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range d.All() {
			if !yield(v) {
				return
			}
		}
	}
}
