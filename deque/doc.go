/*
Package deque implements a segmented, double-ended sequence container.

A Deque stores its elements in fixed-size blocks. Blocks are referenced
through an index map, a slice of slots where each slot either owns one block
or is unused. Elements are addressed by a cursor holding a slot number and an
offset inside that slot's block. This two-level layout gives

  - amortized O(1) insertion and removal at both ends,
  - O(1) random access,
  - insertion and removal in the interior at cost O(min(i, n-i)).

Growing at either end never moves existing elements: when the index map runs
out of spare slots, only the slot entries (block references) are moved into
a re-centered or larger map.

# Block size

The number of elements per block depends on the element size:

	B = max(512 / sizeof(T), 16)

Small elements get large blocks to amortize map overhead; large elements get
small blocks to keep single allocations small.

# Storage and failures

Storage for blocks and maps is requested from an alloc.Allocator. A refused
request surfaces as an error wrapping alloc.ErrExhausted. Single-element
operations and bulk interior insertions leave the deque unchanged on failure.
Bulk insertions at either end are performed as repeated pushes; elements
pushed before a failure remain in the deque.

# Iterator invalidation

Iterators are invalidated by any operation that reallocates the index map or
moves the elements they refer to. Each mutating method documents which
iterators remain valid.

A Deque is not safe for concurrent use. Concurrent readers must synchronize
with writers externally.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package deque

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'collections'
func tracer() tracing.Trace {
	return tracing.Select("collections")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
