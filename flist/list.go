package flist

import "iter"

type node[T any] struct {
	next  *node[T]
	value T
}

// List is a singly-linked list. The zero value is an empty list, ready to use.
// A List must not be copied after first use.
type List[T any] struct {
	head node[T] // sentinel; head.next is the first element
	n    int
}

// New creates an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Of creates a list holding items, in order.
func Of[T any](items ...T) *List[T] {
	l := New[T]()
	l.InsertAfterSlice(l.BeforeBegin(), items...)
	return l
}

// FromSeq creates a list holding the values of seq, in order.
func FromSeq[T any](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	pos := l.BeforeBegin()
	for v := range seq {
		pos = l.InsertAfter(pos, v)
	}
	return l
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.n }

// IsEmpty reports whether l has no elements.
func (l *List[T]) IsEmpty() bool { return l.head.next == nil }

// Front returns the first element. It panics on an empty list.
func (l *List[T]) Front() T {
	assert(l.head.next != nil, "flist: Front on empty list")
	return l.head.next.value
}

// PushFront prepends v.
func (l *List[T]) PushFront(v T) {
	l.InsertAfter(l.BeforeBegin(), v)
}

// PopFront removes the first element. It panics on an empty list.
func (l *List[T]) PopFront() {
	assert(l.head.next != nil, "flist: PopFront on empty list")
	l.EraseAfter(l.BeforeBegin())
}

// Clear removes all elements.
func (l *List[T]) Clear() {
	l.head.next = nil
	l.n = 0
}

// Swap exchanges the contents of l and o.
func (l *List[T]) Swap(o *List[T]) {
	l.head.next, o.head.next = o.head.next, l.head.next
	l.n, o.n = o.n, l.n
}

// Clone returns a shallow copy of l.
func (l *List[T]) Clone() *List[T] {
	return FromSeq(l.Values())
}

// All returns an iterator over index/element pairs.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for p := l.head.next; p != nil; p = p.next {
			if !yield(i, p.value) {
				return
			}
			i++
		}
	}
}

// Values returns an iterator over the elements.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := l.head.next; p != nil; p = p.next {
			if !yield(p.value) {
				return
			}
		}
	}
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	if a.n != b.n {
		return false
	}
	p, q := a.head.next, b.head.next
	for ; p != nil && q != nil; p, q = p.next, q.next {
		if p.value != q.value {
			return false
		}
	}
	return p == nil && q == nil
}

// Remove removes all elements equal to v and returns their count.
func Remove[T comparable](l *List[T], v T) int {
	return l.RemoveIf(func(x T) bool { return x == v })
}
