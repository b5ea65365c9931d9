package alloc

import (
	"fmt"
	"sync"
)

// Budget is an allocator with a byte limit. Requests exceeding the remaining
// budget are refused with ErrExhausted.
//
// Budget additionally supports fault injection: once armed with FailAfter,
// every request after a given number of further successful allocations is
// refused, regardless of the remaining budget. A Budget may be shared between
// containers.
type Budget struct {
	mu      sync.Mutex
	limit   uint64
	used    uint64
	granted int
	failAt  int // fail when granted reaches failAt; < 0 disarms
}

// NewBudget creates an allocator which will grant at most limit bytes at any
// time. A limit of 0 means unlimited.
func NewBudget(limit uint64) *Budget {
	return &Budget{limit: limit, failAt: -1}
}

// FailAfter arms fault injection: after n more successful allocations, all
// further requests fail. FailAfter(0) lets the very next request fail.
func (b *Budget) FailAfter(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failAt = b.granted + max(n, 0)
}

// Disarm switches fault injection off.
func (b *Budget) Disarm() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failAt = -1
}

// Used returns the number of bytes currently granted.
func (b *Budget) Used() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.used
}

// Allocate is part of interface Allocator.
func (b *Budget) Allocate(kind Kind, n int, size uintptr) error {
	if n < 0 {
		return fmt.Errorf("%w: negative count %d", ErrInvalidRequest, n)
	}
	req := uint64(n) * uint64(size)
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failAt >= 0 && b.granted >= b.failAt {
		tracer().Debugf("alloc: injected failure for %s of %d bytes", kind, req)
		return fmt.Errorf("%w: injected failure for %s", ErrExhausted, kind)
	}
	if b.limit > 0 && b.used+req > b.limit {
		return fmt.Errorf("%w: %s of %d bytes exceeds budget (%d of %d in use)",
			ErrExhausted, kind, req, b.used, b.limit)
	}
	b.used += req
	b.granted++
	return nil
}

// Deallocate is part of interface Allocator.
func (b *Budget) Deallocate(kind Kind, n int, size uintptr) {
	req := uint64(n) * uint64(size)
	b.mu.Lock()
	defer b.mu.Unlock()
	if req > b.used {
		panic(fmt.Sprintf("alloc: budget underflow returning %d bytes of %s", req, kind))
	}
	b.used -= req
}

// MaxElements is part of interface Limiter.
func (b *Budget) MaxElements(size uintptr) int {
	if b.limit == 0 {
		return MaxElements(Heap{}, size)
	}
	return int(b.limit / uint64(size))
}

// Equal is part of interface Equaler.
func (b *Budget) Equal(other Allocator) bool {
	o, ok := other.(*Budget)
	return ok && o == b
}

var _ Allocator = (*Budget)(nil)
