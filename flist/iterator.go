package flist

// Iterator is a forward position in a list. The zero Iterator and the
// iterator returned by End do not refer to an element.
type Iterator[T any] struct {
	l *List[T]
	p *node[T]
}

// BeforeBegin returns the position in front of the first element. It may be
// used with the "after" operations, but not be dereferenced.
func (l *List[T]) BeforeBegin() Iterator[T] {
	return Iterator[T]{l: l, p: &l.head}
}

// Begin returns an iterator to the first element, or End for an empty list.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{l: l, p: l.head.next}
}

// End returns the position behind the last element.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{l: l}
}

// Next moves the iterator to the following element.
func (it *Iterator[T]) Next() {
	assert(it.p != nil, "flist: Next on end iterator")
	it.p = it.p.next
}

// Value returns the element at the iterator position.
func (it Iterator[T]) Value() T {
	assert(it.Valid(), "flist: Value of invalid iterator")
	return it.p.value
}

// Set replaces the element at the iterator position.
func (it Iterator[T]) Set(v T) {
	assert(it.Valid(), "flist: Set on invalid iterator")
	it.p.value = v
}

// Valid reports whether it refers to an element.
func (it Iterator[T]) Valid() bool {
	return it.p != nil && it.l != nil && it.p != &it.l.head
}

// Equal reports whether it and o denote the same position.
func (it Iterator[T]) Equal(o Iterator[T]) bool {
	return it.l == o.l && it.p == o.p
}
