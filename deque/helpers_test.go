package deque

import (
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// wide has a size of 64 bytes, which gives blocks of minBlockLen elements.
// Tests use it to cross block boundaries with few elements.
type wide [8]int64

func w(x int) wide {
	return wide{int64(x)}
}

func ws(xs ...int) []wide {
	out := make([]wide, len(xs))
	for i, x := range xs {
		out[i] = w(x)
	}
	return out
}

func seqW(from, to int) []wide {
	out := make([]wide, 0, to-from)
	for x := from; x < to; x++ {
		out = append(out, w(x))
	}
	return out
}

func redirectTracing(t *testing.T) func() {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	return teardown
}

func contents[T any](d *Deque[T]) []T {
	return slices.Collect(d.Values())
}

func mustCheck[T any](t *testing.T, d *Deque[T]) {
	t.Helper()
	if err := d.Check(); err != nil {
		t.Fatalf("invariant check failed: %v\nlayout: %+v", err, d.Layout())
	}
}

func assertContents[T comparable](t *testing.T, d *Deque[T], want []T) {
	t.Helper()
	mustCheck(t, d)
	got := contents(d)
	if d.Len() != len(want) {
		t.Fatalf("length mismatch: got=%d want=%d", d.Len(), len(want))
	}
	if !slices.Equal(got, want) {
		t.Fatalf("contents mismatch:\n got=%v\nwant=%v", got, want)
	}
	for i := range want {
		if d.Index(i) != want[i] {
			t.Fatalf("Index(%d) = %v, want %v", i, d.Index(i), want[i])
		}
	}
}

func mustFromSlice[T any](t *testing.T, cfg Config[T], items []T) *Deque[T] {
	t.Helper()
	d, err := FromSlice(cfg, items)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	return d
}

// lifecycle counts live elements through the Copy and Destroy hooks. Elements
// enter the count only by being copied.
type lifecycle struct {
	live   int
	copies int
	failAt int // 0 disables failing; otherwise the failAt-th copy fails
}

func (lc *lifecycle) config() Config[wide] {
	return Config[wide]{
		Copy: func(v wide) (wide, error) {
			lc.copies++
			if lc.failAt > 0 && lc.copies == lc.failAt {
				return wide{}, errCopyFailed
			}
			lc.live++
			return v, nil
		},
		Destroy: func(*wide) {
			lc.live--
		},
	}
}
