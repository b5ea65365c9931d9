package deque

import (
	"fmt"

	"github.com/npillmayer/collections/alloc"
)

const (
	// blockBytes is the target byte size of a block.
	blockBytes = 512
	// minBlockLen is the lower bound for the number of elements per block.
	minBlockLen = 16
	// minMapLen is the lower bound for the number of slots of an index map.
	minMapLen = 8
)

// BlockSize returns the number of elements per block for element type T.
func BlockSize[T any]() int {
	sz := int(alloc.SizeOf[T]())
	return max(blockBytes/sz, minBlockLen)
}

// indexMap is the slot table of a deque. Every slot is either nil or owns a
// block of exactly bsize elements.
type indexMap[T any] struct {
	slots [][]T
	bsize int
}

func (m *indexMap[T]) isNil() bool {
	return m.slots == nil
}

func (m *indexMap[T]) allocBlock(a alloc.Allocator) ([]T, error) {
	blk, err := alloc.Make[T](a, alloc.KindBlock, m.bsize)
	if err != nil {
		return nil, fmt.Errorf("deque: cannot allocate block: %w", err)
	}
	return blk, nil
}

func (m *indexMap[T]) freeBlock(a alloc.Allocator, slot int) {
	alloc.Free(a, alloc.KindBlock, m.slots[slot])
	m.slots[slot] = nil
}

// allocBlocks populates slots [from, to]. If any allocation fails, the blocks
// allocated so far are released and the slots are left nil.
func (m *indexMap[T]) allocBlocks(a alloc.Allocator, from, to int) (err error) {
	cur := from
	defer func() {
		if err != nil {
			for i := from; i < cur; i++ {
				m.freeBlock(a, i)
			}
			tracer().Debugf("deque: rolled back %d blocks", cur-from)
		}
	}()
	for ; cur <= to; cur++ {
		blk, e := m.allocBlock(a)
		if e != nil {
			return e
		}
		m.slots[cur] = blk
	}
	return nil
}

// freeBlocks releases the blocks of slots [from, to].
func (m *indexMap[T]) freeBlocks(a alloc.Allocator, from, to int) {
	for i := from; i <= to; i++ {
		m.freeBlock(a, i)
	}
}

// --- Map life cycle on the deque -------------------------------------------

// createMap sets up an index map with blocks for n elements. The start cursor
// is placed at the beginning of the first block, the finish cursor n elements
// behind it. The elements themselves are not initialized.
//
// On failure the deque is left without a map.
func (d *Deque[T]) createMap(n int) error {
	assert(d.m.isNil(), "deque: createMap on a deque which owns a map")
	bs := BlockSize[T]()
	nodes := n/bs + 1
	mapLen := max(minMapLen, nodes+2)
	a := d.allocator()
	slots, err := alloc.Make[[]T](a, alloc.KindMap, mapLen)
	if err != nil {
		return fmt.Errorf("deque: cannot allocate map: %w", err)
	}
	m := indexMap[T]{slots: slots, bsize: bs}
	nstart := (mapLen - nodes) / 2
	nfinish := nstart + nodes - 1
	if err := m.allocBlocks(a, nstart, nfinish); err != nil {
		alloc.Free(a, alloc.KindMap, slots)
		return err
	}
	d.m = m
	d.start.setNode(&d.m, nstart)
	d.start.off = 0
	d.finish.setNode(&d.m, nfinish)
	d.finish.off = n % bs
	tracer().Debugf("deque: created map of %d slots, %d blocks of %d", mapLen, nodes, bs)
	return nil
}

// releaseStorage frees all blocks and the map, leaving the deque empty without
// a map. Live elements are destroyed if destroy is set, otherwise they are
// just cleared (they have been moved elsewhere).
func (d *Deque[T]) releaseStorage(destroy bool) {
	if d.m.isNil() {
		return
	}
	if destroy {
		d.destroyRange(d.start, d.finish)
	}
	a := d.allocator()
	d.m.freeBlocks(a, d.start.node, d.finish.node)
	alloc.Free(a, alloc.KindMap, d.m.slots)
	d.m = indexMap[T]{}
	d.start = cursor[T]{}
	d.finish = cursor[T]{}
}

// reserveBack makes sure that n more blocks can be added behind the finish
// slot while keeping one spare slot at the end of the map.
func (d *Deque[T]) reserveBack(n int) error {
	if d.finish.node+n+1 >= len(d.m.slots) {
		return d.reallocateMap(n, false)
	}
	return nil
}

// reserveFront makes sure that n more blocks can be added in front of the
// start slot while keeping one spare slot at the beginning of the map.
func (d *Deque[T]) reserveFront(n int) error {
	if n+1 > d.start.node {
		return d.reallocateMap(n, true)
	}
	return nil
}

// reallocateMap makes room for nodesToAdd more slots at one end of the used
// slot range. If the map is large enough it re-centers the used range in
// place, otherwise it moves the slot entries to a new, larger map. Blocks are
// never copied.
//
// The deque is unchanged if allocating a new map fails.
func (d *Deque[T]) reallocateMap(nodesToAdd int, atFront bool) error {
	oldNodes := d.finish.node - d.start.node + 1
	newNodes := oldNodes + nodesToAdd
	mapLen := len(d.m.slots)
	var newStart int
	if mapLen > 2*newNodes {
		newStart = (mapLen - newNodes) / 2
		if atFront {
			newStart += nodesToAdd
		}
		oldStart, oldFinish := d.start.node, d.finish.node
		copy(d.m.slots[newStart:newStart+oldNodes], d.m.slots[oldStart:oldFinish+1])
		for i := oldStart; i <= oldFinish; i++ {
			if i < newStart || i >= newStart+oldNodes {
				d.m.slots[i] = nil
			}
		}
		tracer().Debugf("deque: re-centered %d blocks in map of %d slots", oldNodes, mapLen)
	} else {
		newLen := mapLen + max(mapLen, nodesToAdd) + 2
		a := d.allocator()
		slots, err := alloc.Make[[]T](a, alloc.KindMap, newLen)
		if err != nil {
			return fmt.Errorf("deque: cannot grow map: %w", err)
		}
		newStart = (newLen - newNodes) / 2
		if atFront {
			newStart += nodesToAdd
		}
		copy(slots[newStart:], d.m.slots[d.start.node:d.finish.node+1])
		alloc.Free(a, alloc.KindMap, d.m.slots)
		d.m.slots = slots
		tracer().Debugf("deque: grew map from %d to %d slots", mapLen, newLen)
	}
	d.start.setNode(&d.m, newStart)
	d.finish.setNode(&d.m, newStart+oldNodes-1)
	return nil
}

// capacity returns the number of elements the current map can hold without
// being reallocated.
func (d *Deque[T]) capacity() int {
	if d.m.isNil() {
		return 0
	}
	bs := d.m.bsize
	front := d.start.node*bs + d.start.off
	back := (len(d.m.slots)-d.finish.node-1)*bs + (bs - d.finish.off)
	return front + d.Len() + back
}
