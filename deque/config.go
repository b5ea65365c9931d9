package deque

import (
	"fmt"
	"reflect"

	"github.com/npillmayer/collections/alloc"
)

// Config configures a deque.
//
// The zero value is a valid configuration: elements are copied by assignment,
// destroyed by zeroing, and storage is approved by alloc.Heap.
type Config[T any] struct {
	// Allocator approves storage for blocks and the index map.
	Allocator alloc.Allocator
	// Copy creates a copy of an element whenever the deque copies elements
	// (Clone, CopyFrom, fill and slice constructors and insertions). A non-nil
	// error aborts the operation in progress.
	Copy func(T) (T, error)
	// Destroy is called for every live element the deque destroys. The slot is
	// zeroed afterwards. Elements which have been moved are not destroyed.
	Destroy func(*T)
}

func (cfg Config[T]) normalized() Config[T] {
	if cfg.Allocator == nil {
		cfg.Allocator = alloc.Heap{}
	}
	return cfg
}

func (cfg Config[T]) validate() error {
	if cfg.Allocator == nil {
		return nil
	}
	v := reflect.ValueOf(cfg.Allocator)
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return fmt.Errorf("%w: allocator is a nil %T", ErrInvalidConfig, cfg.Allocator)
	}
	return nil
}
