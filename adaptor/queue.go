package adaptor

import "github.com/npillmayer/collections/deque"

// Queue is a FIFO adaptor. Elements are pushed to the back and popped from
// the front of the underlying sequence.
type Queue[T any] struct {
	seq FrontBackSequence[T]
}

// NewQueue creates an empty queue on top of a deque.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{seq: &deque.Deque[T]{}}
}

// QueueOver creates a queue on top of seq, which may already hold elements.
func QueueOver[T any](seq FrontBackSequence[T]) *Queue[T] {
	assert(seq != nil, "adaptor: queue over nil sequence")
	return &Queue[T]{seq: seq}
}

// Push appends v to the queue.
func (q *Queue[T]) Push(v T) error {
	return q.seq.PushBack(v)
}

// Emplace appends an element created by ctor.
func (q *Queue[T]) Emplace(ctor func() (T, error)) error {
	return emplaceBack[T](q.seq, ctor)
}

// Pop removes the front element. It panics on an empty queue.
func (q *Queue[T]) Pop() {
	assert(!q.seq.IsEmpty(), "adaptor: Pop on empty queue")
	q.seq.PopFront()
}

// Front returns the oldest element. It panics on an empty queue.
func (q *Queue[T]) Front() T {
	assert(!q.seq.IsEmpty(), "adaptor: Front on empty queue")
	return q.seq.Front()
}

// Back returns the newest element. It panics on an empty queue.
func (q *Queue[T]) Back() T {
	assert(!q.seq.IsEmpty(), "adaptor: Back on empty queue")
	return q.seq.Back()
}

func (q *Queue[T]) Len() int      { return q.seq.Len() }
func (q *Queue[T]) IsEmpty() bool { return q.seq.IsEmpty() }

// Swap exchanges the contents of q and o.
func (q *Queue[T]) Swap(o *Queue[T]) {
	q.seq, o.seq = o.seq, q.seq
}

// Container returns the underlying sequence.
func (q *Queue[T]) Container() FrontBackSequence[T] {
	return q.seq
}

// QueuesEqual reports whether a and b hold equal elements in the same order.
func QueuesEqual[T comparable](a, b *Queue[T]) bool {
	return sequencesEqual[T](a.seq, b.seq)
}
