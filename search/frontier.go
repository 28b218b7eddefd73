package search

import "container/heap"

// Frontier is the pending-cell container that shapes expansion order.
// Add stores a cell snapshot with the priority the engine computed for
// it; Next removes and returns the container's notion of "first".
//
// Next panics when the frontier is empty: engines always test IsEmpty
// first, so an empty pop is a logic error, not a runtime condition.
type Frontier interface {
	// Add inserts a cell snapshot. Queue and stack frontiers ignore
	// priority; the heap frontier orders by it, ascending.
	Add(c Cell, priority int)
	// Next removes and returns the next cell. Panics if empty.
	Next() Cell
	// Reset discards all pending entries.
	Reset()
	// IsEmpty reports whether no entries remain.
	IsEmpty() bool
	// Len returns the number of pending entries, stale duplicates included.
	Len() int
}

//----------------------------------------------------------------------------//
// FIFO queue frontier
//----------------------------------------------------------------------------//

// queueFrontier yields cells in insertion order (breadth-first layering).
type queueFrontier struct {
	items []Cell
}

// NewQueueFrontier returns an empty FIFO frontier.
func NewQueueFrontier() Frontier {
	return &queueFrontier{}
}

// Add appends c; priority is ignored.
func (q *queueFrontier) Add(c Cell, _ int) {
	q.items = append(q.items, c)
}

// Next pops the oldest entry. Panics if empty.
func (q *queueFrontier) Next() Cell {
	if len(q.items) == 0 {
		panic("search: Next on empty frontier")
	}
	c := q.items[0]
	q.items = q.items[1:]
	return c
}

// Reset discards all pending entries.
func (q *queueFrontier) Reset() {
	q.items = nil
}

// IsEmpty reports whether no entries remain.
func (q *queueFrontier) IsEmpty() bool {
	return len(q.items) == 0
}

// Len returns the number of pending entries.
func (q *queueFrontier) Len() int {
	return len(q.items)
}

//----------------------------------------------------------------------------//
// LIFO stack frontier
//----------------------------------------------------------------------------//

// stackFrontier yields cells newest-first (depth-first plunging).
type stackFrontier struct {
	items []Cell
}

// NewStackFrontier returns an empty LIFO frontier.
func NewStackFrontier() Frontier {
	return &stackFrontier{}
}

// Add pushes c; priority is ignored.
func (s *stackFrontier) Add(c Cell, _ int) {
	s.items = append(s.items, c)
}

// Next pops the newest entry. Panics if empty.
func (s *stackFrontier) Next() Cell {
	n := len(s.items)
	if n == 0 {
		panic("search: Next on empty frontier")
	}
	c := s.items[n-1]
	s.items = s.items[:n-1]
	return c
}

// Reset discards all pending entries.
func (s *stackFrontier) Reset() {
	s.items = nil
}

// IsEmpty reports whether no entries remain.
func (s *stackFrontier) IsEmpty() bool {
	return len(s.items) == 0
}

// Len returns the number of pending entries.
func (s *stackFrontier) Len() int {
	return len(s.items)
}

//----------------------------------------------------------------------------//
// Min-heap frontier
//----------------------------------------------------------------------------//

// heapItem pairs a cell snapshot with its priority and an insertion
// sequence number used to break priority ties first-in first-out.
type heapItem struct {
	cell     Cell
	priority int
	seq      uint64
}

// cellPQ is a min-heap of *heapItem ordered by (priority, seq) ascending.
// Engines use lazy re-prioritization: improved cells are re-pushed and
// the stale entries are skipped on pop, so duplicates are expected.
type cellPQ []*heapItem

// Len returns the number of items in the heap.
func (pq cellPQ) Len() int { return len(pq) }

// Less orders by priority, then by insertion sequence for stable ties.
func (pq cellPQ) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *heapItem.
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(*heapItem)) }

// Pop removes and returns the last element.
// Called by heap.Pop after it moves the minimum there.
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// heapFrontier yields the lowest-priority cell first, breaking ties by
// insertion order so equal-priority cells expand deterministically.
type heapFrontier struct {
	pq  cellPQ
	seq uint64
}

// NewHeapFrontier returns an empty min-heap frontier.
func NewHeapFrontier() Frontier {
	return &heapFrontier{}
}

// Add pushes c with the given priority.
func (h *heapFrontier) Add(c Cell, priority int) {
	h.seq++
	heap.Push(&h.pq, &heapItem{cell: c, priority: priority, seq: h.seq})
}

// Next pops the lowest-priority entry. Panics if empty.
func (h *heapFrontier) Next() Cell {
	if len(h.pq) == 0 {
		panic("search: Next on empty frontier")
	}
	return heap.Pop(&h.pq).(*heapItem).cell
}

// Reset discards all pending entries and restarts the tie-break sequence.
func (h *heapFrontier) Reset() {
	h.pq = nil
	h.seq = 0
}

// IsEmpty reports whether no entries remain.
func (h *heapFrontier) IsEmpty() bool {
	return len(h.pq) == 0
}

// Len returns the number of pending entries, stale duplicates included.
func (h *heapFrontier) Len() int {
	return len(h.pq)
}
