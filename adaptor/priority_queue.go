package adaptor

import "github.com/npillmayer/collections/deque"

// PriorityQueue keeps its elements in a binary heap inside a random-access
// sequence. With less ordering elements ascending, Top returns the greatest
// element.
type PriorityQueue[T any] struct {
	seq  RandomAccessSequence[T]
	less func(a, b T) bool
}

// NewPriorityQueue creates an empty priority queue on top of a deque.
func NewPriorityQueue[T any](less func(a, b T) bool) *PriorityQueue[T] {
	assert(less != nil, "adaptor: priority queue without ordering")
	return &PriorityQueue[T]{seq: &deque.Deque[T]{}, less: less}
}

// PriorityQueueOver creates a priority queue on top of seq. The elements
// already present in seq are arranged into heap order.
func PriorityQueueOver[T any](seq RandomAccessSequence[T], less func(a, b T) bool) *PriorityQueue[T] {
	assert(seq != nil && less != nil, "adaptor: priority queue needs sequence and ordering")
	pq := &PriorityQueue[T]{seq: seq, less: less}
	n := seq.Len()
	for i := n/2 - 1; i >= 0; i-- {
		pq.down(i, n)
	}
	return pq
}

// Push inserts v.
func (pq *PriorityQueue[T]) Push(v T) error {
	if err := pq.seq.PushBack(v); err != nil {
		return err
	}
	pq.up(pq.seq.Len() - 1)
	return nil
}

// Emplace inserts an element created by ctor.
func (pq *PriorityQueue[T]) Emplace(ctor func() (T, error)) error {
	if err := emplaceBack[T](pq.seq, ctor); err != nil {
		return err
	}
	pq.up(pq.seq.Len() - 1)
	return nil
}

// Top returns the greatest element. It panics on an empty queue.
func (pq *PriorityQueue[T]) Top() T {
	assert(!pq.seq.IsEmpty(), "adaptor: Top on empty priority queue")
	return *pq.seq.Ref(0)
}

// Pop removes the greatest element. It panics on an empty queue.
func (pq *PriorityQueue[T]) Pop() {
	assert(!pq.seq.IsEmpty(), "adaptor: Pop on empty priority queue")
	n := pq.seq.Len() - 1
	pq.swap(0, n)
	pq.down(0, n)
	pq.seq.PopBack()
}

func (pq *PriorityQueue[T]) Len() int      { return pq.seq.Len() }
func (pq *PriorityQueue[T]) IsEmpty() bool { return pq.seq.IsEmpty() }

// Swap exchanges contents and orderings of pq and o.
func (pq *PriorityQueue[T]) Swap(o *PriorityQueue[T]) {
	pq.seq, o.seq = o.seq, pq.seq
	pq.less, o.less = o.less, pq.less
}

// Container returns the underlying sequence, in heap order.
func (pq *PriorityQueue[T]) Container() RandomAccessSequence[T] {
	return pq.seq
}

func (pq *PriorityQueue[T]) swap(i, j int) {
	a, b := pq.seq.Ref(i), pq.seq.Ref(j)
	*a, *b = *b, *a
}

// up restores heap order for the element at j, moving it towards the root.
func (pq *PriorityQueue[T]) up(j int) {
	for j > 0 {
		i := (j - 1) / 2
		if !pq.less(*pq.seq.Ref(i), *pq.seq.Ref(j)) {
			break
		}
		pq.swap(i, j)
		j = i
	}
}

// down restores heap order for the element at i within the first n elements.
func (pq *PriorityQueue[T]) down(i, n int) {
	for {
		j := 2*i + 1
		if j >= n || j < 0 {
			break
		}
		if r := j + 1; r < n && pq.less(*pq.seq.Ref(j), *pq.seq.Ref(r)) {
			j = r
		}
		if !pq.less(*pq.seq.Ref(i), *pq.seq.Ref(j)) {
			break
		}
		pq.swap(i, j)
		i = j
	}
}
