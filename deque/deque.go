package deque

import (
	"fmt"
	"iter"

	"github.com/npillmayer/collections/alloc"
)

// Deque is a segmented double-ended sequence.
//
// The zero value is an empty deque using alloc.Heap, ready to use. The index
// map is created lazily by the first mutation.
type Deque[T any] struct {
	m         indexMap[T]
	start     cursor[T] // first element
	finish    cursor[T] // one past the last element
	alloc     alloc.Allocator
	copyFn    func(T) (T, error)
	destroyFn func(*T)
}

// New creates an empty deque with validated configuration.
func New[T any](cfg Config[T]) (*Deque[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Deque[T]{
		alloc:     cfg.Allocator,
		copyFn:    cfg.Copy,
		destroyFn: cfg.Destroy,
	}, nil
}

// NewSized creates a deque holding n zero values.
func NewSized[T any](cfg Config[T], n int) (*Deque[T], error) {
	d, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrInvalidArgument, n)
	}
	if err := d.createMap(n); err != nil {
		return nil, err
	}
	return d, nil
}

// NewFilled creates a deque holding n copies of v.
func NewFilled[T any](cfg Config[T], n int, v T) (*Deque[T], error) {
	d, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrInvalidArgument, n)
	}
	if err := d.build(n, func(int) (T, error) { return d.copyValue(v) }); err != nil {
		return nil, err
	}
	return d, nil
}

// FromSlice creates a deque holding copies of items, in order.
func FromSlice[T any](cfg Config[T], items []T) (*Deque[T], error) {
	d, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if err := d.build(len(items), func(i int) (T, error) { return d.copyValue(items[i]) }); err != nil {
		return nil, err
	}
	return d, nil
}

// FromSeq creates a deque holding copies of the values produced by seq.
// seq is consumed exactly once.
func FromSeq[T any](cfg Config[T], seq iter.Seq[T]) (*Deque[T], error) {
	d, err := New(cfg)
	if err != nil {
		return nil, err
	}
	for v := range seq {
		c, err := d.copyValue(v)
		if err == nil {
			if err = d.PushBack(c); err != nil {
				d.destroy(&c)
			}
		}
		if err != nil {
			d.Release()
			return nil, err
		}
	}
	return d, nil
}

// Of creates a deque with default configuration holding items.
func Of[T any](items ...T) *Deque[T] {
	d, err := FromSlice(Config[T]{}, items)
	assert(err == nil, "deque: heap allocation refused")
	return d
}

// build creates a fresh map for n elements and constructs them with gen. If
// gen fails, the elements constructed so far are destroyed and the deque is
// left without a map.
func (d *Deque[T]) build(n int, gen func(int) (T, error)) error {
	if err := d.createMap(n); err != nil {
		return err
	}
	cur := d.start
	for i := 0; i < n; i++ {
		v, err := gen(i)
		if err != nil {
			d.destroyRange(d.start, cur)
			d.releaseStorage(false)
			tracer().Debugf("deque: construction failed after %d of %d elements", i, n)
			return err
		}
		*cur.ref() = v
		cur.inc(&d.m)
	}
	return nil
}

// sibling returns an empty deque sharing d's configuration.
func (d *Deque[T]) sibling() *Deque[T] {
	return &Deque[T]{
		alloc:     d.alloc,
		copyFn:    d.copyFn,
		destroyFn: d.destroyFn,
	}
}

func (d *Deque[T]) allocator() alloc.Allocator {
	if d.alloc == nil {
		return alloc.Heap{}
	}
	return d.alloc
}

func (d *Deque[T]) copyValue(v T) (T, error) {
	if d.copyFn == nil {
		return v, nil
	}
	return d.copyFn(v)
}

func (d *Deque[T]) destroy(p *T) {
	if d.destroyFn != nil {
		d.destroyFn(p)
	}
	var zero T
	*p = zero
}

// destroyRange destroys the elements in [first, last).
func (d *Deque[T]) destroyRange(first, last cursor[T]) {
	if d.destroyFn == nil {
		d.vacateRange(first, last)
		return
	}
	for c := first; !c.equal(last); c.inc(&d.m) {
		d.destroy(c.ref())
	}
}

// vacateRange zeroes the slots in [first, last) without destroying them.
func (d *Deque[T]) vacateRange(first, last cursor[T]) {
	if first.node == last.node {
		clear(first.block[first.off:last.off])
		return
	}
	clear(first.block[first.off:])
	for n := first.node + 1; n < last.node; n++ {
		clear(d.m.slots[n])
	}
	clear(last.block[:last.off])
}

// Allocator returns the allocator of d.
func (d *Deque[T]) Allocator() alloc.Allocator {
	return d.allocator()
}

// --- Capacity --------------------------------------------------------------

// Len returns the number of elements in d.
func (d *Deque[T]) Len() int {
	if d == nil || d.m.isNil() {
		return 0
	}
	return distance(d.m.bsize, d.finish, d.start)
}

// IsEmpty reports whether d has no elements.
func (d *Deque[T]) IsEmpty() bool {
	return d == nil || d.m.isNil() || d.start.equal(d.finish)
}

// MaxLen returns the maximum number of elements d may hold.
func (d *Deque[T]) MaxLen() int {
	return alloc.MaxElements(d.allocator(), alloc.SizeOf[T]())
}

// --- Element access --------------------------------------------------------

// At returns the element at index i.
func (d *Deque[T]) At(i int) (T, error) {
	if i < 0 || i >= d.Len() {
		var zero T
		return zero, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, i, d.Len())
	}
	return d.Index(i), nil
}

// Set replaces the element at index i. The previous element is destroyed.
func (d *Deque[T]) Set(i int, v T) error {
	if i < 0 || i >= d.Len() {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, i, d.Len())
	}
	p := d.Ref(i)
	d.destroy(p)
	*p = v
	return nil
}

// Index returns the element at index i without bounds checking against the
// length. The result for an invalid index is undefined; it may panic.
func (d *Deque[T]) Index(i int) T {
	return *d.Ref(i)
}

// Ref returns a pointer to the element at index i without bounds checking.
// The pointer is valid until the element is moved or destroyed.
func (d *Deque[T]) Ref(i int) *T {
	c := d.start.add(&d.m, i)
	return c.ref()
}

// Front returns the first element. It panics on an empty deque.
func (d *Deque[T]) Front() T {
	assert(!d.IsEmpty(), "deque: Front on empty deque")
	return *d.start.ref()
}

// Back returns the last element. It panics on an empty deque.
func (d *Deque[T]) Back() T {
	assert(!d.IsEmpty(), "deque: Back on empty deque")
	c := d.finish
	c.dec(&d.m)
	return *c.ref()
}

// --- Push and pop ----------------------------------------------------------

// PushBack appends v.
//
// Iterators to existing elements stay valid unless the index map had to be
// reallocated. End iterators are always invalidated.
func (d *Deque[T]) PushBack(v T) error {
	if d.m.isNil() {
		if err := d.createMap(0); err != nil {
			return err
		}
	}
	if d.finish.off != d.m.bsize-1 {
		d.finish.block[d.finish.off] = v
		d.finish.off++
		return nil
	}
	// The finish cursor has to move to a new block.
	if err := d.reserveBack(1); err != nil {
		return err
	}
	blk, err := d.m.allocBlock(d.allocator())
	if err != nil {
		return err
	}
	d.m.slots[d.finish.node+1] = blk
	d.finish.block[d.finish.off] = v
	d.finish.setNode(&d.m, d.finish.node+1)
	d.finish.off = 0
	return nil
}

// PushFront prepends v.
//
// Iterators to existing elements stay valid unless the index map had to be
// reallocated. Begin iterators are always invalidated.
func (d *Deque[T]) PushFront(v T) error {
	if d.m.isNil() {
		if err := d.createMap(0); err != nil {
			return err
		}
	}
	if d.start.off != 0 {
		d.start.off--
		d.start.block[d.start.off] = v
		return nil
	}
	if err := d.reserveFront(1); err != nil {
		return err
	}
	blk, err := d.m.allocBlock(d.allocator())
	if err != nil {
		return err
	}
	d.m.slots[d.start.node-1] = blk
	d.start.setNode(&d.m, d.start.node-1)
	d.start.off = d.m.bsize - 1
	d.start.block[d.start.off] = v
	return nil
}

// EmplaceBack appends an element created by ctor. If ctor fails, d is
// unchanged. If storage cannot be acquired, the created element is destroyed.
func (d *Deque[T]) EmplaceBack(ctor func() (T, error)) error {
	v, err := ctor()
	if err != nil {
		return err
	}
	if err := d.PushBack(v); err != nil {
		d.destroy(&v)
		return err
	}
	return nil
}

// EmplaceFront prepends an element created by ctor. Failures are handled as
// for EmplaceBack.
func (d *Deque[T]) EmplaceFront(ctor func() (T, error)) error {
	v, err := ctor()
	if err != nil {
		return err
	}
	if err := d.PushFront(v); err != nil {
		d.destroy(&v)
		return err
	}
	return nil
}

// PopBack destroys the last element. It panics on an empty deque.
//
// Only iterators to the removed element and end iterators are invalidated.
func (d *Deque[T]) PopBack() {
	assert(!d.IsEmpty(), "deque: PopBack on empty deque")
	d.retractBack(true)
}

// PopFront destroys the first element. It panics on an empty deque.
//
// Only iterators to the removed element are invalidated.
func (d *Deque[T]) PopFront() {
	assert(!d.IsEmpty(), "deque: PopFront on empty deque")
	d.retractFront(true)
}

// retractBack removes the last element. If destroy is false, the element has
// been moved and its slot is only cleared. A block left empty behind the new
// finish position is released.
func (d *Deque[T]) retractBack(destroy bool) {
	if d.finish.off == 0 {
		d.m.freeBlock(d.allocator(), d.finish.node)
		d.finish.setNode(&d.m, d.finish.node-1)
		d.finish.off = d.m.bsize
	}
	d.finish.off--
	d.release(d.finish.ref(), destroy)
}

// retractFront removes the first element. If the start block becomes empty,
// it is released.
func (d *Deque[T]) retractFront(destroy bool) {
	d.release(d.start.ref(), destroy)
	if d.start.off != d.m.bsize-1 {
		d.start.off++
		return
	}
	d.m.freeBlock(d.allocator(), d.start.node)
	d.start.setNode(&d.m, d.start.node+1)
	d.start.off = 0
}

func (d *Deque[T]) release(p *T, destroy bool) {
	if destroy {
		d.destroy(p)
		return
	}
	var zero T
	*p = zero
}

// --- Clear, release, swap --------------------------------------------------

// Clear destroys all elements. The index map and the start block are kept;
// all other blocks are released. All iterators are invalidated.
func (d *Deque[T]) Clear() {
	d.clearWith(true)
}

// clearWith empties d, keeping the start block. Elements are destroyed if
// destroy is set, otherwise their slots are just zeroed.
func (d *Deque[T]) clearWith(destroy bool) {
	if d.m.isNil() {
		return
	}
	if destroy {
		d.destroyRange(d.start, d.finish)
	} else {
		d.vacateRange(d.start, d.finish)
	}
	if d.finish.node > d.start.node {
		d.m.freeBlocks(d.allocator(), d.start.node+1, d.finish.node)
	}
	d.finish = d.start
}

// Release destroys all elements and returns all storage to the allocator.
// Afterwards d is an empty deque without a map and may be used further.
func (d *Deque[T]) Release() {
	d.releaseStorage(true)
}

// swapStorage exchanges maps and cursors of d and o.
func (d *Deque[T]) swapStorage(o *Deque[T]) {
	d.m, o.m = o.m, d.m
	d.start, o.start = o.start, d.start
	d.finish, o.finish = o.finish, d.finish
}

// Swap exchanges the contents of d and o in O(1). Storage is returned to the
// allocator that approved it, therefore allocators are exchanged as well.
// Iterators keep referring to their original deque and are invalidated.
func (d *Deque[T]) Swap(o *Deque[T]) {
	if d == o {
		return
	}
	d.swapStorage(o)
	d.alloc, o.alloc = o.alloc, d.alloc
}

// --- Copy and move ---------------------------------------------------------

// Clone returns a deep copy of d, using the Copy hook for every element. On
// failure, all partially acquired resources are released.
func (d *Deque[T]) Clone() (*Deque[T], error) {
	out := d.sibling()
	n := d.Len()
	if n == 0 {
		return out, nil
	}
	src := d.start
	err := out.build(n, func(int) (T, error) {
		v := *src.ref()
		src.inc(&d.m)
		return out.copyValue(v)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Move transfers the contents of d to a new deque in O(1). d is left empty
// without a map.
func (d *Deque[T]) Move() *Deque[T] {
	out := d.sibling()
	out.swapStorage(d)
	return out
}

// MoveFrom replaces the contents of d with the contents of o and leaves o
// empty. If the allocators of d and o are interchangeable, or o's allocator
// propagates, storage is transferred in O(1). Otherwise the elements are
// moved one by one into storage of d's allocator. If that fails, d is left
// empty and o keeps all of its elements.
func (d *Deque[T]) MoveFrom(o *Deque[T]) error {
	if d == o {
		return nil
	}
	oa := o.allocator()
	if alloc.Equal(d.allocator(), oa) || alloc.Propagates(oa) {
		d.Release()
		d.swapStorage(o)
		d.alloc = o.alloc
		return nil
	}
	d.Clear()
	for c := o.start; !c.equal(o.finish); c.inc(&o.m) {
		if err := d.PushBack(*c.ref()); err != nil {
			d.clearWith(false)
			return err
		}
	}
	o.releaseStorage(false)
	return nil
}

// CopyFrom replaces the contents of d with copies of the elements of o. If
// o's allocator propagates, d adopts it.
//
// d is cleared before copying. If copying fails, d holds the elements
// copied so far.
func (d *Deque[T]) CopyFrom(o *Deque[T]) error {
	if d == o {
		return nil
	}
	d.Clear()
	oa := o.allocator()
	if alloc.Propagates(oa) && !alloc.Equal(d.allocator(), oa) {
		d.releaseStorage(false)
		d.alloc = o.alloc
	}
	return d.AssignSeq(o.Values())
}
