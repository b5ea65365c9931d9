package deque

import "errors"

var (
	// ErrInvalidConfig signals an invalid deque configuration.
	ErrInvalidConfig = errors.New("deque: invalid configuration")
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("deque: index out of bounds")
	// ErrInvalidArgument signals an invalid count or range argument.
	ErrInvalidArgument = errors.New("deque: invalid argument")
	// ErrInvariant is reported by Check for a structurally broken deque.
	ErrInvariant = errors.New("deque: invariant violated")
)
