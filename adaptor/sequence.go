package adaptor

import (
	"iter"
	"slices"

	"github.com/npillmayer/collections/deque"
)

// BackSequence is a sequence which may grow and shrink at its back.
type BackSequence[T any] interface {
	Len() int
	IsEmpty() bool
	Back() T
	PushBack(T) error
	PopBack()
	Values() iter.Seq[T] // front to back
}

// FrontBackSequence is a BackSequence which may additionally shrink at its
// front.
type FrontBackSequence[T any] interface {
	BackSequence[T]
	Front() T
	PopFront()
}

// RandomAccessSequence is a BackSequence with access to its elements by index.
type RandomAccessSequence[T any] interface {
	BackSequence[T]
	Ref(i int) *T
}

var (
	_ FrontBackSequence[int]    = (*deque.Deque[int])(nil)
	_ RandomAccessSequence[int] = (*deque.Deque[int])(nil)
)

// emplacer is implemented by sequences which construct elements in place.
type emplacer[T any] interface {
	EmplaceBack(ctor func() (T, error)) error
}

func emplaceBack[T any](seq BackSequence[T], ctor func() (T, error)) error {
	if e, ok := seq.(emplacer[T]); ok {
		return e.EmplaceBack(ctor)
	}
	v, err := ctor()
	if err != nil {
		return err
	}
	return seq.PushBack(v)
}

func sequencesEqual[T comparable](a, b BackSequence[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	return slices.Equal(slices.Collect(a.Values()), slices.Collect(b.Values()))
}
