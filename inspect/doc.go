/*
Package inspect renders the storage layout of a deque to a console.

Each slot of the index map is printed as one cell: unused slots as a dot,
allocated blocks shaded by how many live elements they hold. The slots
holding the first element and the end position are marked below the cells.
On terminals the cells are colored.

	inspect.Print(d.Layout())

# BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

License information is available in the LICENSE file.
*/
package inspect

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'collections'
func tracer() tracing.Trace {
	return tracing.Select("collections")
}
