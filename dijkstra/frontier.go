package dijkstra

import "container/heap"

// frontierEntry is a (cell, tentative cost) pair waiting in the frontier.
// seq records insertion order and breaks cost ties so extraction order is
// reproducible across runs.
type frontierEntry struct {
	idx  int   // row-major cell index
	cost int64 // tentative distance from origin
	seq  uint64
}

// frontier is a binary min-heap of frontierEntry with a per-cell position
// index, so a stale entry for a cell can be removed directly instead of being
// skipped on extraction. At most one entry per cell is ever present.
//
// frontier implements heap.Interface; use insert, popMin and remove rather
// than the interface methods.
type frontier struct {
	entries []frontierEntry
	pos     []int // cell index → heap position, -1 when absent
	seq     uint64
}

// newFrontier allocates a frontier able to index size cells.
func newFrontier(size int) *frontier {
	f := &frontier{
		entries: make([]frontierEntry, 0, size),
		pos:     make([]int, size),
	}
	for i := range f.pos {
		f.pos[i] = -1
	}

	return f
}

// Len returns the number of entries in the heap.
func (f *frontier) Len() int { return len(f.entries) }

// Less orders by cost, then by insertion sequence.
func (f *frontier) Less(i, j int) bool {
	if f.entries[i].cost != f.entries[j].cost {
		return f.entries[i].cost < f.entries[j].cost
	}

	return f.entries[i].seq < f.entries[j].seq
}

// Swap swaps two entries and keeps the position index in sync.
func (f *frontier) Swap(i, j int) {
	f.entries[i], f.entries[j] = f.entries[j], f.entries[i]
	f.pos[f.entries[i].idx] = i
	f.pos[f.entries[j].idx] = j
}

// Push appends x; called by heap.Push.
func (f *frontier) Push(x interface{}) {
	e := x.(frontierEntry)
	f.pos[e.idx] = len(f.entries)
	f.entries = append(f.entries, e)
}

// Pop removes the last entry; called by heap.Pop and heap.Remove.
func (f *frontier) Pop() interface{} {
	n := len(f.entries)
	e := f.entries[n-1]
	f.entries = f.entries[:n-1]
	f.pos[e.idx] = -1

	return e
}

// insert adds idx with the given cost. The caller removes any previous entry first.
// Complexity: O(log N).
func (f *frontier) insert(idx int, cost int64) {
	f.seq++
	heap.Push(f, frontierEntry{idx: idx, cost: cost, seq: f.seq})
}

// popMin extracts the entry with the smallest cost.
// Complexity: O(log N).
func (f *frontier) popMin() (idx int, cost int64) {
	e := heap.Pop(f).(frontierEntry)

	return e.idx, e.cost
}

// remove deletes the entry for idx if present and reports whether it was.
// Complexity: O(log N).
func (f *frontier) remove(idx int) bool {
	p := f.pos[idx]
	if p < 0 {
		return false
	}
	heap.Remove(f, p)

	return true
}

// contains reports whether idx currently has an entry.
func (f *frontier) contains(idx int) bool {
	return f.pos[idx] >= 0
}
