package deque

import "cmp"

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *Deque[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal, using eq to compare elements. A nil deque is
// treated as empty.
func EqualFunc[T, U any](a *Deque[T], b *Deque[U], eq func(T, U) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	if a.Len() == 0 {
		return true
	}
	ia, ib := a.Begin(), b.Begin()
	for k := a.Len(); k > 0; k-- {
		if !eq(ia.Value(), ib.Value()) {
			return false
		}
		ia.Next()
		ib.Next()
	}
	return true
}

// Compare compares a and b lexicographically. The result is -1, 0 or +1.
func Compare[T cmp.Ordered](a, b *Deque[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is like Compare, using c to compare elements. A nil deque is
// treated as empty.
func CompareFunc[T, U any](a *Deque[T], b *Deque[U], c func(T, U) int) int {
	na, nb := a.Len(), b.Len()
	if na == 0 || nb == 0 {
		return cmp.Compare(na, nb)
	}
	ia, ib := a.Begin(), b.Begin()
	for k := 0; k < min(na, nb); k++ {
		if r := c(ia.Value(), ib.Value()); r != 0 {
			return r
		}
		ia.Next()
		ib.Next()
	}
	return cmp.Compare(na, nb)
}
