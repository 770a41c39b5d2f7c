// Package frontier provides the three candidate containers behind the
// search disciplines: a FIFO queue (breadth-first), a LIFO stack
// (depth-first), and a min-heap on priority (Dijkstra, A*).
//
// Determinism
//
//	All three are fully deterministic. The heap breaks priority ties by
//	insertion order, so two candidates with equal priority pop in the
//	order they were pushed. Without this, container/heap's sift order
//	would leak into traces and identical runs could diverge.
//
// The heap deliberately has no decrease-key. A cheaper route to a queued
// node is pushed as a fresh entry; the caller discards the stale one when
// it surfaces. See the engine's stale-entry filtering.
package frontier

import (
	"container/heap"
)

// Queue is a FIFO frontier.
type Queue struct {
	items []Item
}

// NewQueue constructs an empty FIFO frontier.
func NewQueue() *Queue { return &Queue{} }

// Push appends a candidate to the back.
func (q *Queue) Push(it Item) { q.items = append(q.items, it) }

// Pop removes the front candidate; false when empty.
func (q *Queue) Pop() (Item, bool) {
	if len(q.items) == 0 {
		return Item{}, false
	}
	it := q.items[0]
	q.items = q.items[1:]

	return it, true
}

// Len returns the number of waiting candidates.
func (q *Queue) Len() int { return len(q.items) }

// Items returns a copy in front-to-back order: index 0 pops next.
func (q *Queue) Items() []Item { return copyItems(q.items) }

// Kind returns KindQueue.
func (q *Queue) Kind() Kind { return KindQueue }

// Stack is a LIFO frontier.
type Stack struct {
	items []Item
}

// NewStack constructs an empty LIFO frontier.
func NewStack() *Stack { return &Stack{} }

// Push places a candidate on top.
func (s *Stack) Push(it Item) { s.items = append(s.items, it) }

// Pop removes the top candidate; false when empty.
func (s *Stack) Pop() (Item, bool) {
	if len(s.items) == 0 {
		return Item{}, false
	}
	n := len(s.items) - 1
	it := s.items[n]
	s.items = s.items[:n]

	return it, true
}

// Len returns the number of waiting candidates.
func (s *Stack) Len() int { return len(s.items) }

// Items returns a copy in bottom-to-top order: the last element pops next.
func (s *Stack) Items() []Item { return copyItems(s.items) }

// Kind returns KindStack.
func (s *Stack) Kind() Kind { return KindStack }

// Heap is a min-heap frontier ordered by Item.Priority, insertion order
// as tie-break.
type Heap struct {
	pq  entryPQ
	seq uint64
}

// NewHeap constructs an empty min-heap frontier.
func NewHeap() *Heap {
	h := &Heap{}
	heap.Init(&h.pq)

	return h
}

// Push inserts a candidate, stamped with a monotonic sequence number so
// equal priorities pop first-pushed-first.
func (h *Heap) Push(it Item) {
	h.seq++
	heap.Push(&h.pq, &entry{item: it, seq: h.seq})
}

// Pop removes the lowest-priority candidate; false when empty.
func (h *Heap) Pop() (Item, bool) {
	if h.pq.Len() == 0 {
		return Item{}, false
	}
	e := heap.Pop(&h.pq).(*entry)

	return e.item, true
}

// Len returns the number of waiting candidates.
func (h *Heap) Len() int { return h.pq.Len() }

// Items returns a copy in internal heap-array order. Only membership is
// meaningful; callers that need ranking must sort their copy.
func (h *Heap) Items() []Item {
	if h.pq.Len() == 0 {
		return nil
	}
	out := make([]Item, h.pq.Len())
	for i, e := range h.pq {
		out[i] = e.item
	}

	return out
}

// Kind returns KindHeap.
func (h *Heap) Kind() Kind { return KindHeap }

// entry pairs a candidate with its insertion stamp.
type entry struct {
	item Item
	seq  uint64
}

// entryPQ is the container/heap backing store for Heap.
type entryPQ []*entry

// Len returns the number of items in the heap.
func (pq entryPQ) Len() int { return len(pq) }

// Less orders by Priority ascending, then by insertion sequence.
func (pq entryPQ) Less(i, j int) bool {
	if pq[i].item.Priority != pq[j].item.Priority {
		return pq[i].item.Priority < pq[j].item.Priority
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq entryPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *entryPQ) Push(x interface{}) { *pq = append(*pq, x.(*entry)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *entryPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return e
}

// copyItems clones a candidate slice; nil in, nil out.
func copyItems(src []Item) []Item {
	if len(src) == 0 {
		return nil
	}
	out := make([]Item, len(src))
	copy(out, src)

	return out
}
