/*
Package adaptor provides restricted container interfaces on top of an
underlying sequence: a LIFO Stack, a FIFO Queue and a PriorityQueue.

Every adaptor delegates to a sequence implementing one of the interfaces
BackSequence, FrontBackSequence or RandomAccessSequence. By default a
deque.Deque is used, which implements all three of them.

	s := adaptor.NewStack[int]()
	s.Push(1)
	s.Push(2)
	top := s.Top() // 2

Accessing or removing the top element of an empty adaptor is a programming
error and panics.

# BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

License information is available in the LICENSE file.
*/
package adaptor

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
