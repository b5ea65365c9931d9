package deque

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/npillmayer/collections/alloc"
)

// How to run:
//   - Deterministic randomized property test:
//     go test ./deque -run TestRandomizedAgainstSliceModel -count=1
//   - Fuzz test:
//     go test ./deque -run '^$' -fuzz FuzzDequeOps -fuzztime=10s

type modelRun struct {
	t     *testing.T
	d     *Deque[wide]
	model []wide
	next  int
}

func (mr *modelRun) value() wide {
	mr.next++
	return w(mr.next)
}

// apply performs operation op with argument arg on both the deque and the
// slice model.
func (mr *modelRun) apply(op, arg int) {
	t, d := mr.t, mr.d
	n := len(mr.model)
	pos := 0
	if n > 0 {
		pos = arg % (n + 1)
	}
	switch op % 12 {
	case 0, 1:
		v := mr.value()
		if err := d.PushBack(v); err != nil {
			t.Fatal(err)
		}
		mr.model = append(mr.model, v)
	case 2, 3:
		v := mr.value()
		if err := d.PushFront(v); err != nil {
			t.Fatal(err)
		}
		mr.model = slices.Insert(mr.model, 0, v)
	case 4:
		if n > 0 {
			d.PopBack()
			mr.model = mr.model[:n-1]
		}
	case 5:
		if n > 0 {
			d.PopFront()
			mr.model = mr.model[1:]
		}
	case 6:
		v := mr.value()
		if err := d.InsertAt(pos, v); err != nil {
			t.Fatal(err)
		}
		mr.model = slices.Insert(mr.model, pos, v)
	case 7:
		if n > 0 {
			i := arg % n
			if err := d.DeleteAt(i); err != nil {
				t.Fatal(err)
			}
			mr.model = slices.Delete(mr.model, i, i+1)
		}
	case 8:
		v := mr.value()
		k := arg%23 + 1
		if err := d.InsertN(pos, k, v); err != nil {
			t.Fatal(err)
		}
		mr.model = slices.Insert(mr.model, pos, slices.Repeat([]wide{v}, k)...)
	case 9:
		if n > 0 {
			i := arg % n
			j := i + (arg/7)%(n-i+1)
			if err := d.DeleteRange(i, j); err != nil {
				t.Fatal(err)
			}
			mr.model = slices.Delete(mr.model, i, j)
		}
	case 10:
		if n > 0 {
			v := mr.value()
			i := arg % n
			if err := d.Set(i, v); err != nil {
				t.Fatal(err)
			}
			mr.model[i] = v
		}
	case 11:
		if arg%5 == 0 {
			if err := d.ShrinkToFit(); err != nil {
				t.Fatal(err)
			}
		} else {
			items := []wide{mr.value(), mr.value(), mr.value()}
			if err := d.InsertSlice(pos, items...); err != nil {
				t.Fatal(err)
			}
			mr.model = slices.Insert(mr.model, pos, items...)
		}
	}
}

func (mr *modelRun) verify(step int) {
	mr.t.Helper()
	if err := mr.d.Check(); err != nil {
		mr.t.Fatalf("step %d: %v", step, err)
	}
	if mr.d.Len() != len(mr.model) {
		mr.t.Fatalf("step %d: length %d, model %d", step, mr.d.Len(), len(mr.model))
	}
	if !slices.Equal(contents(mr.d), mr.model) {
		mr.t.Fatalf("step %d: contents diverge from model", step)
	}
}

func TestRandomizedAgainstSliceModel(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 42} {
		r := rand.New(rand.NewSource(seed))
		c := alloc.NewCounting(nil)
		d, _ := New(Config[wide]{Allocator: c})
		mr := &modelRun{t: t, d: d}
		for step := 0; step < 3000; step++ {
			mr.apply(r.Intn(12), r.Intn(1000))
			mr.verify(step)
			if got, want := c.Live(alloc.KindBlock), int64(d.Layout().Blocks); got != want {
				t.Fatalf("seed %d step %d: live blocks %d, layout %d", seed, step, got, want)
			}
		}
		d.Release()
		if c.Live(alloc.KindBlock) != 0 || c.Live(alloc.KindMap) != 0 {
			t.Errorf("seed %d: storage leaked: %v", seed, c.Stats())
		}
	}
}

func FuzzDequeOps(f *testing.F) {
	f.Add([]byte{0, 1, 2, 3, 6, 7, 8, 9})
	f.Add([]byte{2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 5, 5, 5})
	f.Add([]byte{8, 200, 9, 13, 11, 4, 6, 77, 7, 3})
	f.Fuzz(func(t *testing.T, ops []byte) {
		d, _ := New(Config[wide]{})
		mr := &modelRun{t: t, d: d}
		for i := 0; i+1 < len(ops); i += 2 {
			mr.apply(int(ops[i]), int(ops[i+1]))
			mr.verify(i / 2)
		}
	})
}
