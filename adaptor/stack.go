package adaptor

import "github.com/npillmayer/collections/deque"

// Stack is a LIFO adaptor. Elements are pushed to and popped from the back of
// the underlying sequence.
type Stack[T any] struct {
	seq BackSequence[T]
}

// NewStack creates an empty stack on top of a deque.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{seq: &deque.Deque[T]{}}
}

// StackOver creates a stack on top of seq. Existing elements of seq are
// part of the stack, with the back element on top.
func StackOver[T any](seq BackSequence[T]) *Stack[T] {
	assert(seq != nil, "adaptor: stack over nil sequence")
	return &Stack[T]{seq: seq}
}

// Push puts v on top of the stack.
func (s *Stack[T]) Push(v T) error {
	return s.seq.PushBack(v)
}

// Emplace puts an element created by ctor on top of the stack.
func (s *Stack[T]) Emplace(ctor func() (T, error)) error {
	return emplaceBack(s.seq, ctor)
}

// Pop removes the top element. It panics on an empty stack.
func (s *Stack[T]) Pop() {
	assert(!s.seq.IsEmpty(), "adaptor: Pop on empty stack")
	s.seq.PopBack()
}

// Top returns the top element. It panics on an empty stack.
func (s *Stack[T]) Top() T {
	assert(!s.seq.IsEmpty(), "adaptor: Top on empty stack")
	return s.seq.Back()
}

// Len returns the number of elements.
func (s *Stack[T]) Len() int { return s.seq.Len() }

// IsEmpty reports whether the stack has no elements.
func (s *Stack[T]) IsEmpty() bool { return s.seq.IsEmpty() }

// Swap exchanges the contents of s and o.
func (s *Stack[T]) Swap(o *Stack[T]) {
	s.seq, o.seq = o.seq, s.seq
}

// Container returns the underlying sequence.
func (s *Stack[T]) Container() BackSequence[T] {
	return s.seq
}

// StacksEqual reports whether a and b hold equal elements in the same order.
func StacksEqual[T comparable](a, b *Stack[T]) bool {
	return sequencesEqual(a.seq, b.seq)
}
