/*
Package flist implements a generic singly-linked list.

A List starts with a sentinel position in front of its first element, which is
returned by BeforeBegin. All insertions and removals are expressed relative to
the position in front of the affected element ("after" operations), because a
singly-linked list cannot step backwards.

	l := flist.Of(3, 1, 2)
	l.Sort(func(a, b int) bool { return a < b })
	l.InsertAfter(l.BeforeBegin(), 0)   // 0 1 2 3

Iterators stay valid until the element they point to is removed.

# BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

License information is available in the LICENSE file.
*/
package flist

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
