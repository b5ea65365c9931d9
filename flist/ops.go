package flist

// InsertAfter inserts v behind pos and returns an iterator to the new element.
func (l *List[T]) InsertAfter(pos Iterator[T], v T) Iterator[T] {
	l.checkPos(pos)
	nd := &node[T]{next: pos.p.next, value: v}
	pos.p.next = nd
	l.n++
	return Iterator[T]{l: l, p: nd}
}

// InsertAfterN inserts count copies of v behind pos. It returns an iterator
// to the last inserted element, or pos if count is not positive.
func (l *List[T]) InsertAfterN(pos Iterator[T], count int, v T) Iterator[T] {
	l.checkPos(pos)
	for ; count > 0; count-- {
		pos = l.InsertAfter(pos, v)
	}
	return pos
}

// InsertAfterSlice inserts items behind pos, preserving their order. It
// returns an iterator to the last inserted element, or pos if items is empty.
func (l *List[T]) InsertAfterSlice(pos Iterator[T], items ...T) Iterator[T] {
	l.checkPos(pos)
	for _, v := range items {
		pos = l.InsertAfter(pos, v)
	}
	return pos
}

// EraseAfter removes the element behind pos and returns an iterator to the
// element following the removed one.
func (l *List[T]) EraseAfter(pos Iterator[T]) Iterator[T] {
	l.checkPos(pos)
	victim := pos.p.next
	assert(victim != nil, "flist: EraseAfter without following element")
	pos.p.next = victim.next
	victim.next = nil
	l.n--
	return Iterator[T]{l: l, p: pos.p.next}
}

// EraseAfterRange removes the elements between pos and last, both
// exclusive, and returns last.
func (l *List[T]) EraseAfterRange(pos, last Iterator[T]) Iterator[T] {
	l.checkPos(pos)
	assert(last.l == l, "flist: EraseAfterRange with iterator of another list")
	for pos.p.next != last.p {
		l.EraseAfter(pos)
	}
	return last
}

// RemoveIf removes all elements for which pred reports true and returns
// their count.
func (l *List[T]) RemoveIf(pred func(T) bool) int {
	removed := 0
	for p := &l.head; p.next != nil; {
		if pred(p.next.value) {
			victim := p.next
			p.next = victim.next
			victim.next = nil
			removed++
			continue
		}
		p = p.next
	}
	l.n -= removed
	return removed
}

// Unique removes every element which eq reports equal to its predecessor and
// returns the number of removed elements.
func (l *List[T]) Unique(eq func(a, b T) bool) int {
	p := l.head.next
	if p == nil {
		return 0
	}
	removed := 0
	for p.next != nil {
		if eq(p.value, p.next.value) {
			victim := p.next
			p.next = victim.next
			victim.next = nil
			removed++
			continue
		}
		p = p.next
	}
	l.n -= removed
	return removed
}

// SpliceAfter moves all elements of other behind pos. other is left empty.
func (l *List[T]) SpliceAfter(pos Iterator[T], other *List[T]) {
	l.checkPos(pos)
	assert(other != l, "flist: SpliceAfter of a list into itself")
	if other.head.next == nil {
		return
	}
	tail := other.head.next
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = pos.p.next
	pos.p.next = other.head.next
	l.n += other.n
	other.Clear()
}

// Reverse reverses the order of the elements.
func (l *List[T]) Reverse() {
	var prev *node[T]
	p := l.head.next
	for p != nil {
		next := p.next
		p.next = prev
		prev, p = p, next
	}
	l.head.next = prev
}

// Merge moves the elements of other into l. Both lists must be sorted by less;
// the result is sorted, with elements of l preceding equal elements of other.
// other is left empty.
func (l *List[T]) Merge(other *List[T], less func(a, b T) bool) {
	if other == l || other.head.next == nil {
		return
	}
	l.head.next = mergeNodes(l.head.next, other.head.next, less)
	l.n += other.n
	other.Clear()
}

// Sort sorts the list by less. The sort is stable.
func (l *List[T]) Sort(less func(a, b T) bool) {
	if l.n < 2 {
		return
	}
	l.head.next, _ = sortRun(l.head.next, l.n, less)
	tracer().Debugf("flist: sorted %d elements", l.n)
}

// sortRun sorts the first n nodes starting at p, n > 0. It returns the sorted
// run and the remaining unsorted nodes.
func sortRun[T any](p *node[T], n int, less func(a, b T) bool) (*node[T], *node[T]) {
	if n == 1 {
		rest := p.next
		p.next = nil
		return p, rest
	}
	a, rest := sortRun(p, n/2, less)
	b, rest := sortRun(rest, n-n/2, less)
	return mergeNodes(a, b, less), rest
}

func mergeNodes[T any](a, b *node[T], less func(a, b T) bool) *node[T] {
	var head node[T]
	tail := &head
	for a != nil && b != nil {
		if less(b.value, a.value) {
			tail.next, b = b, b.next
		} else {
			tail.next, a = a, a.next
		}
		tail = tail.next
	}
	if a != nil {
		tail.next = a
	} else {
		tail.next = b
	}
	return head.next
}

func (l *List[T]) checkPos(pos Iterator[T]) {
	assert(pos.l == l && pos.p != nil, "flist: invalid position for list")
}
