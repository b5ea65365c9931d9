/*
Package alloc provides the allocation capability used by the containers of
module collections.

Go manages memory itself, so an Allocator does not hand out raw storage.
Instead it approves and accounts for every storage request a container makes
before the container creates the backing slice. A container asks its allocator
for two kinds of storage: element blocks (KindBlock) and index maps (KindMap).
A refusal is reported as ErrExhausted and is the only expected external fault
of the containers in this module.

Containers use the generic helpers Make and Free, which combine the
accounting step with creating (or clearing) the actual slice.

Three implementations are provided:

  - Heap is unbounded and stateless. It is the default.
  - Budget refuses requests beyond a byte limit, and can be configured to
    fail after a number of successful allocations (useful for testing
    rollback paths).
  - Counting wraps another allocator and keeps per-kind counters.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package alloc

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'collections'
func tracer() tracing.Trace {
	return tracing.Select("collections")
}
