package alloc

import (
	"fmt"
	"sync/atomic"
)

// Counting wraps an allocator and counts the requests passing through it.
// Counters are atomic, so a Counting allocator may be shared.
type Counting struct {
	base     Allocator
	counters [2]kindCounters
}

type kindCounters struct {
	allocs    atomic.Uint64
	frees     atomic.Uint64
	failures  atomic.Uint64
	liveBytes atomic.Int64
}

// NewCounting wraps base. A nil base is replaced by Heap.
func NewCounting(base Allocator) *Counting {
	if base == nil {
		base = Heap{}
	}
	return &Counting{base: base}
}

// Allocate is part of interface Allocator.
func (c *Counting) Allocate(kind Kind, n int, size uintptr) error {
	kc := c.kind(kind)
	if err := c.base.Allocate(kind, n, size); err != nil {
		kc.failures.Add(1)
		return err
	}
	kc.allocs.Add(1)
	kc.liveBytes.Add(int64(n) * int64(size))
	return nil
}

// Deallocate is part of interface Allocator.
func (c *Counting) Deallocate(kind Kind, n int, size uintptr) {
	kc := c.kind(kind)
	kc.frees.Add(1)
	kc.liveBytes.Add(-int64(n) * int64(size))
	c.base.Deallocate(kind, n, size)
}

func (c *Counting) kind(k Kind) *kindCounters {
	if int(k) >= len(c.counters) {
		panic(fmt.Sprintf("alloc: unknown allocation kind %d", k))
	}
	return &c.counters[k]
}

// Allocs returns the number of granted requests of a kind.
func (c *Counting) Allocs(kind Kind) uint64 {
	return c.kind(kind).allocs.Load()
}

// Frees returns the number of returned allocations of a kind.
func (c *Counting) Frees(kind Kind) uint64 {
	return c.kind(kind).frees.Load()
}

// Failures returns the number of refused requests of a kind.
func (c *Counting) Failures(kind Kind) uint64 {
	return c.kind(kind).failures.Load()
}

// Live returns the number of allocations of a kind not yet returned.
func (c *Counting) Live(kind Kind) int64 {
	kc := c.kind(kind)
	return int64(kc.allocs.Load()) - int64(kc.frees.Load())
}

// LiveBytes returns the number of bytes of a kind currently granted.
func (c *Counting) LiveBytes(kind Kind) int64 {
	return c.kind(kind).liveBytes.Load()
}

// Reset zeroes all counters. Live allocations are forgotten.
func (c *Counting) Reset() {
	for i := range c.counters {
		c.counters[i].allocs.Store(0)
		c.counters[i].frees.Store(0)
		c.counters[i].failures.Store(0)
		c.counters[i].liveBytes.Store(0)
	}
}

// Stats returns all counters, keyed by "<kind>.<counter>".
func (c *Counting) Stats() map[string]interface{} {
	stats := make(map[string]interface{}, 8)
	for _, k := range []Kind{KindBlock, KindMap} {
		kc := c.kind(k)
		stats[k.String()+".allocs"] = kc.allocs.Load()
		stats[k.String()+".frees"] = kc.frees.Load()
		stats[k.String()+".failures"] = kc.failures.Load()
		stats[k.String()+".live_bytes"] = kc.liveBytes.Load()
	}
	return stats
}

// Propagate is part of interface Propagator; it follows the wrapped allocator.
func (c *Counting) Propagate() bool {
	return Propagates(c.base)
}

// MaxElements is part of interface Limiter; it follows the wrapped allocator.
func (c *Counting) MaxElements(size uintptr) int {
	return MaxElements(c.base, size)
}

// Equal is part of interface Equaler.
func (c *Counting) Equal(other Allocator) bool {
	o, ok := other.(*Counting)
	return ok && o == c
}

var _ Allocator = (*Counting)(nil)
