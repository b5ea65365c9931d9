package deque

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/collections/alloc"
)

var errCopyFailed = errors.New("copy failed")

func TestPushFailureAtBlockBoundary(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	b := alloc.NewBudget(0)
	d, err := New(Config[wide]{Allocator: b})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 15; i++ { // fills the first block up to its last slot
		if err := d.PushBack(w(i)); err != nil {
			t.Fatal(err)
		}
	}
	before := d.Layout()
	b.FailAfter(0)
	if err := d.PushBack(w(15)); !errors.Is(err, alloc.ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
	assertContents(t, d, seqW(0, 15))
	if after := d.Layout(); after.Blocks != before.Blocks || after.FinishOffset != before.FinishOffset {
		t.Errorf("failed push changed the layout: %+v -> %+v", before, after)
	}
	// the front block has no free slot in front of offset 0 either
	if err := d.PushFront(w(-1)); !errors.Is(err, alloc.ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
	assertContents(t, d, seqW(0, 15))
	b.Disarm()
	if err := d.PushBack(w(15)); err != nil {
		t.Fatal(err)
	}
	assertContents(t, d, seqW(0, 16))
}

func TestPushFailureOnMapGrowth(t *testing.T) {
	b := alloc.NewBudget(0)
	d, _ := New(Config[wide]{Allocator: b})
	// with a map of 8 slots starting at slot 3, the 64th element needs slot 7,
	// which would leave no spare slot
	for i := 0; i < 63; i++ {
		if err := d.PushBack(w(i)); err != nil {
			t.Fatal(err)
		}
	}
	if d.Layout().MapLen != minMapLen {
		t.Fatalf("unexpected map length %d", d.Layout().MapLen)
	}
	b.FailAfter(0)
	if err := d.PushBack(w(63)); !errors.Is(err, alloc.ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
	assertContents(t, d, seqW(0, 63))
	if d.Layout().MapLen != minMapLen {
		t.Errorf("failed growth replaced the map")
	}
	b.Disarm()
	if err := d.PushBack(w(63)); err != nil {
		t.Fatal(err)
	}
	assertContents(t, d, seqW(0, 64))
	if d.Layout().MapLen <= minMapLen {
		t.Errorf("map should have grown, has %d slots", d.Layout().MapLen)
	}
}

func TestEmplaceDestroysOnStorageFailure(t *testing.T) {
	b := alloc.NewBudget(0)
	destroyed := 0
	d, _ := New(Config[int]{
		Allocator: b,
		Destroy:   func(*int) { destroyed++ },
	})
	b.FailAfter(0)
	err := d.EmplaceBack(func() (int, error) { return 1, nil })
	if !errors.Is(err, alloc.ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
	if destroyed != 1 {
		t.Errorf("constructed element must be destroyed once, was destroyed %d times", destroyed)
	}
	if d.Len() != 0 || d.Layout().MapLen != 0 {
		t.Errorf("deque changed by failed emplace")
	}
	mustCheck(t, d)
}

func TestConstructionRollback(t *testing.T) {
	b := alloc.NewBudget(0)
	// map and first block succeed, the second block fails
	b.FailAfter(2)
	if _, err := NewSized(Config[wide]{Allocator: b}, 100); !errors.Is(err, alloc.ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
	if b.Used() != 0 {
		t.Errorf("partial construction leaked %d bytes", b.Used())
	}
	b.Disarm()
	lc := &lifecycle{failAt: 30}
	cfg := lc.config()
	cfg.Allocator = b
	if _, err := FromSlice(cfg, seqW(0, 50)); !errors.Is(err, errCopyFailed) {
		t.Fatalf("expected copy failure, got %v", err)
	}
	if lc.live != 0 {
		t.Errorf("%d copies not destroyed after failed construction", lc.live)
	}
	if b.Used() != 0 {
		t.Errorf("failed construction leaked %d bytes", b.Used())
	}
	lc.copies, lc.failAt = 0, 5
	if _, err := FromSeq(cfg, slices.Values(seqW(0, 50))); !errors.Is(err, errCopyFailed) {
		t.Fatalf("expected copy failure, got %v", err)
	}
	if lc.live != 0 || b.Used() != 0 {
		t.Errorf("FromSeq rollback incomplete: live=%d used=%d", lc.live, b.Used())
	}
}

func TestBulkInsertFailureLeavesDequeUnchanged(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	b := alloc.NewBudget(0)
	lc := &lifecycle{}
	cfg := lc.config()
	cfg.Allocator = b
	d := mustFromSlice(t, cfg, seqW(0, 40))
	used := b.Used()

	// storage failure
	b.FailAfter(0)
	if err := d.InsertN(20, 5, w(-1)); !errors.Is(err, alloc.ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
	b.Disarm()
	assertContents(t, d, seqW(0, 40))

	// failing copy hook after two successful copies
	lc.failAt = lc.copies + 3
	if err := d.InsertN(20, 5, w(-1)); !errors.Is(err, errCopyFailed) {
		t.Fatalf("expected copy failure, got %v", err)
	}
	assertContents(t, d, seqW(0, 40))
	if lc.live != 40 {
		t.Errorf("rolled back copies not destroyed: %d live, want 40", lc.live)
	}
	if b.Used() != used {
		t.Errorf("failed insert changed storage use from %d to %d", used, b.Used())
	}
	lc.failAt = lc.copies + 2
	if err := d.InsertSlice(3, seqW(100, 110)...); !errors.Is(err, errCopyFailed) {
		t.Fatalf("expected copy failure, got %v", err)
	}
	assertContents(t, d, seqW(0, 40))
	if lc.live != 40 {
		t.Errorf("rolled back copies not destroyed: %d live, want 40", lc.live)
	}
}

func TestBoundaryBulkInsertKeepsPrefix(t *testing.T) {
	lc := &lifecycle{}
	d := mustFromSlice(t, lc.config(), seqW(0, 4))
	lc.failAt = lc.copies + 4
	if err := d.InsertN(4, 10, w(9)); !errors.Is(err, errCopyFailed) {
		t.Fatalf("expected copy failure, got %v", err)
	}
	// copies made before the failure remain
	assertContents(t, d, append(seqW(0, 4), ws(9, 9, 9)...))
	if lc.live != 7 {
		t.Errorf("expected 7 live elements, have %d", lc.live)
	}
}

func TestCloneFailureReleasesEverything(t *testing.T) {
	c := alloc.NewCounting(nil)
	lc := &lifecycle{}
	cfg := lc.config()
	cfg.Allocator = c
	d := mustFromSlice(t, cfg, seqW(0, 70))
	blocks, maps := c.Live(alloc.KindBlock), c.Live(alloc.KindMap)
	lc.failAt = lc.copies + 50
	if _, err := d.Clone(); !errors.Is(err, errCopyFailed) {
		t.Fatalf("expected copy failure, got %v", err)
	}
	if c.Live(alloc.KindBlock) != blocks || c.Live(alloc.KindMap) != maps {
		t.Errorf("failed clone leaked storage: %v", c.Stats())
	}
	if lc.live != 70 {
		t.Errorf("failed clone left %d extra copies alive", lc.live-70)
	}
	assertContents(t, d, seqW(0, 70))
}

func TestMoveFromFailureKeepsSource(t *testing.T) {
	bd, bo := alloc.NewBudget(0), alloc.NewBudget(0)
	d := mustFromSlice(t, Config[wide]{Allocator: bd}, seqW(0, 3))
	o := mustFromSlice(t, Config[wide]{Allocator: bo}, seqW(10, 60))
	bd.FailAfter(1)
	if err := d.MoveFrom(o); !errors.Is(err, alloc.ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
	mustCheck(t, d)
	if d.Len() != 0 {
		t.Errorf("destination should be left empty, has %d elements", d.Len())
	}
	assertContents(t, o, seqW(10, 60))
}
