package deque

// Layout is a snapshot of the storage structure of a deque.
type Layout struct {
	BlockSize     int        // elements per block
	MapLen        int        // number of slots in the index map
	Blocks        int        // number of allocated blocks
	Len           int        // number of elements
	StartSlot     int        // slot of the first element
	StartOffset   int        // offset of the first element in its block
	FinishSlot    int        // slot of the end position
	FinishOffset  int        // offset of the end position in its block
	FrontCapacity int        // elements which fit in front without a new map
	BackCapacity  int        // elements which fit behind without a new map
	Slots         []SlotInfo // per-slot occupation
}

// SlotInfo describes the occupation of one index map slot.
type SlotInfo struct {
	Allocated bool
	First     int // offset of the first live element
	Live      int // number of live elements
}

// Layout returns a snapshot of the storage structure of d. A deque without
// index map has a zero MapLen and no slots.
func (d *Deque[T]) Layout() Layout {
	l := Layout{BlockSize: BlockSize[T]()}
	if d.m.isNil() {
		return l
	}
	bs := d.m.bsize
	l.MapLen = len(d.m.slots)
	l.Blocks = d.finish.node - d.start.node + 1
	l.Len = d.Len()
	l.StartSlot, l.StartOffset = d.start.node, d.start.off
	l.FinishSlot, l.FinishOffset = d.finish.node, d.finish.off
	l.FrontCapacity = d.start.node*bs + d.start.off
	l.BackCapacity = (l.MapLen-d.finish.node-1)*bs + (bs - d.finish.off)
	l.Slots = make([]SlotInfo, l.MapLen)
	for i := range l.Slots {
		if d.m.slots[i] == nil {
			continue
		}
		first, end := 0, bs
		if i == d.start.node {
			first = d.start.off
		}
		if i == d.finish.node {
			end = d.finish.off
		}
		l.Slots[i] = SlotInfo{Allocated: true, First: first, Live: max(end-first, 0)}
	}
	return l
}
