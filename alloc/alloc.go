package alloc

import (
	"fmt"
	"math"
	"unsafe"
)

// Kind classifies storage requests.
type Kind uint8

const (
	// KindBlock is element storage of a fixed-size block.
	KindBlock Kind = iota
	// KindMap is storage of an index map (slots referencing blocks).
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindBlock:
		return "block"
	case KindMap:
		return "map"
	}
	return "unknown"
}

// Allocator approves and accounts for storage requests.
//
// Allocate is asked for n elements of the given size in bytes. A non-nil error
// means the request is refused and no storage must be used. Deallocate returns
// storage previously approved by Allocate with the same arguments.
type Allocator interface {
	Allocate(kind Kind, n int, size uintptr) error
	Deallocate(kind Kind, n int, size uintptr)
}

// Propagator is implemented by allocators which follow their container on
// copy-assignment and swap.
type Propagator interface {
	Propagate() bool
}

// Limiter is implemented by allocators with an upper bound on the number of
// elements a single container may hold.
type Limiter interface {
	MaxElements(size uintptr) int
}

// Equaler is implemented by stateful allocators which can tell whether storage
// approved by one of them may be returned to the other.
type Equaler interface {
	Equal(other Allocator) bool
}

// Make creates a slice of n zero elements after a successful Allocate.
func Make[T any](a Allocator, kind Kind, n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative count %d", ErrInvalidRequest, n)
	}
	if err := a.Allocate(kind, n, SizeOf[T]()); err != nil {
		return nil, err
	}
	return make([]T, n), nil
}

// Free clears s and returns its storage to a. The slice must not be used
// afterwards.
func Free[T any](a Allocator, kind Kind, s []T) {
	if s == nil {
		return
	}
	clear(s)
	a.Deallocate(kind, len(s), SizeOf[T]())
}

// SizeOf returns the in-memory size of a T, with a minimum of 1.
func SizeOf[T any]() uintptr {
	var zero T
	if sz := unsafe.Sizeof(zero); sz > 0 {
		return sz
	}
	return 1
}

// Equal reports whether storage approved by a may be returned to b.
//
// Allocators are interchangeable if they are identical, if both are stateless
// Heap allocators, or if a says so through Equaler.
func Equal(a, b Allocator) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if _, ok := a.(Heap); ok {
		_, ok = b.(Heap)
		return ok
	}
	if eq, ok := a.(Equaler); ok {
		return eq.Equal(b)
	}
	return false
}

// Propagates reports whether a follows its container on copy-assignment and
// swap.
func Propagates(a Allocator) bool {
	if p, ok := a.(Propagator); ok {
		return p.Propagate()
	}
	return false
}

// MaxElements returns the maximum number of elements of the given size a
// container may hold when using a.
func MaxElements(a Allocator, size uintptr) int {
	if size == 0 {
		size = 1
	}
	if l, ok := a.(Limiter); ok {
		return l.MaxElements(size)
	}
	return int(uintptr(math.MaxInt) / size)
}

// --- Heap ------------------------------------------------------------------

// Heap is the unbounded default allocator. It never refuses a request.
type Heap struct{}

// Allocate is part of interface Allocator.
func (Heap) Allocate(kind Kind, n int, size uintptr) error {
	if n < 0 {
		return fmt.Errorf("%w: negative count %d", ErrInvalidRequest, n)
	}
	return nil
}

// Deallocate is part of interface Allocator.
func (Heap) Deallocate(Kind, int, uintptr) {}

// Propagate is part of interface Propagator. Heap allocators are stateless and
// always travel with their container.
func (Heap) Propagate() bool { return true }

var _ Allocator = Heap{}
