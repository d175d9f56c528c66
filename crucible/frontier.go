package crucible

import "container/heap"

// Frontier is a min-priority queue of (state, cumulative cost) pairs.
// Equal costs pop in State.Less order.
//
// It uses the lazy decrease-key approach: a cheaper path to a state is pushed
// as a new entry and the stale one is skipped by the driver when popped.
type Frontier struct {
	h entryHeap
}

// NewFrontier returns an empty Frontier with room for capacity entries.
func NewFrontier(capacity int) *Frontier {
	if capacity < 0 {
		capacity = 0
	}

	return &Frontier{h: make(entryHeap, 0, capacity)}
}

// Push adds s with cumulative cost. Complexity: O(log n).
func (f *Frontier) Push(s State, cost int64) {
	heap.Push(&f.h, item{Entry: Entry{State: s, Cost: cost}, root: true})
}

// PopMin removes and returns the cheapest entry; ok is false when empty.
// Complexity: O(log n).
func (f *Frontier) PopMin() (e Entry, ok bool) {
	it, ok := f.pop()
	return it.Entry, ok
}

// Len returns the number of pending entries, stale ones included.
func (f *Frontier) Len() int { return f.h.Len() }

// pushFrom adds s reached from parent; used for path reconstruction.
func (f *Frontier) pushFrom(s State, cost int64, parent State) {
	heap.Push(&f.h, item{Entry: Entry{State: s, Cost: cost}, parent: parent})
}

func (f *Frontier) pop() (item, bool) {
	if f.h.Len() == 0 {
		return item{}, false
	}

	return heap.Pop(&f.h).(item), true
}

// item is a heap element. root marks the seeds, which have no parent.
type item struct {
	Entry
	parent State
	root   bool
}

// entryHeap implements heap.Interface ordered by (Cost, State.Less).
type entryHeap []item

// Len returns the number of items in the heap.
func (h entryHeap) Len() int { return len(h) }

// Less defines the comparison: lower cost first, then lexicographic state.
func (h entryHeap) Less(i, j int) bool {
	if h[i].Cost != h[j].Cost {
		return h[i].Cost < h[j].Cost
	}

	return h[i].State.Less(h[j].State)
}

// Swap swaps two elements in the heap.
func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap; called by heap.Push.
func (h *entryHeap) Push(x any) { *h = append(*h, x.(item)) }

// Pop removes the last element; called by heap.Pop.
func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}
