package alloc

import "errors"

var (
	// ErrExhausted signals that an allocator refused a storage request.
	ErrExhausted = errors.New("alloc: resources exhausted")
	// ErrInvalidRequest signals a malformed allocation request.
	ErrInvalidRequest = errors.New("alloc: invalid request")
)
