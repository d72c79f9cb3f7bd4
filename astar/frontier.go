// Frontier management for A*: the open set as an indexed min-heap keyed by
// f-cost, plus the closed set. Unlike a lazy priority queue that pushes
// duplicates and discards stale entries on pop, the indexed heap tracks each
// open node's heap position so a re-discovered node is re-prioritized in
// place (decrease-key via heap.Fix). This keeps membership tests O(1) and
// guarantees each node occupies at most one heap slot.
//
// Complexity targets:
//
//   - insert / extract-min / decrease-key: O(log n)
//   - open & closed membership:            O(1)

package astar

import "container/heap"

// frontierItem is one open-set entry: a node ID with its current g- and
// f-costs and its position in the heap slice (maintained by heap.Interface).
type frontierItem struct {
	id    string
	gCost int64 // best known cost from start
	fCost int64 // gCost + heuristic estimate; the extraction priority
	index int   // position in the heap slice, maintained by Swap
}

// frontierHeap orders items by ascending f-cost.
//
// Tie-break rule (deterministic): when f-costs are equal, the item with the
// smaller g-cost wins — it has made more real progress and leans less on the
// heuristic. When (f, g) both tie, the lexicographically smaller ID wins, so
// equivalent runs always pop nodes in the same order.
type frontierHeap []*frontierItem

func (h frontierHeap) Len() int { return len(h) }

func (h frontierHeap) Less(i, j int) bool {
	if h[i].fCost != h[j].fCost {
		return h[i].fCost < h[j].fCost
	}
	if h[i].gCost != h[j].gCost {
		return h[i].gCost < h[j].gCost
	}

	return h[i].id < h[j].id
}

func (h frontierHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

// Push adds a new element x onto the heap. Called by heap.Push.
func (h *frontierHeap) Push(x interface{}) {
	item := x.(*frontierItem)
	item.index = len(*h)
	*h = append(*h, item)
}

// Pop removes and returns the minimum element. Called by heap.Pop.
func (h *frontierHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // release reference for GC
	item.index = -1
	*h = old[:n-1]

	return item
}

// frontier combines the open-set heap with ID-keyed maps for O(1) membership
// answers. A node is open, closed, or neither — never both: close() is only
// ever called on the item just extracted, and pushOrUpdate refuses closed
// nodes.
type frontier struct {
	heap   frontierHeap
	open   map[string]*frontierItem
	closed map[string]struct{}
}

// newFrontier returns an empty frontier with capacity hints for n nodes.
func newFrontier(n int) *frontier {
	return &frontier{
		heap:   make(frontierHeap, 0, n),
		open:   make(map[string]*frontierItem, n),
		closed: make(map[string]struct{}, n),
	}
}

// pushOrUpdate inserts id into the open set with the given costs, or, if id
// is already open, lowers its priority in place. Closed nodes are ignored.
func (f *frontier) pushOrUpdate(id string, gCost, fCost int64) {
	if _, done := f.closed[id]; done {
		return
	}
	if item, ok := f.open[id]; ok {
		// Re-discovered on a better route: decrease-key in place.
		item.gCost = gCost
		item.fCost = fCost
		heap.Fix(&f.heap, item.index)
		return
	}
	item := &frontierItem{id: id, gCost: gCost, fCost: fCost}
	heap.Push(&f.heap, item)
	f.open[id] = item
}

// popMin extracts the open node with minimum f-cost under the tie-break
// rule. Caller must check that the frontier is non-empty.
func (f *frontier) popMin() *frontierItem {
	item := heap.Pop(&f.heap).(*frontierItem)
	delete(f.open, item.id)

	return item
}

// close marks id as settled. Once closed, a node is never reopened.
func (f *frontier) close(id string) {
	f.closed[id] = struct{}{}
}

// isClosed reports whether id has been settled.
func (f *frontier) isClosed(id string) bool {
	_, ok := f.closed[id]

	return ok
}

// isOpen reports whether id is currently awaiting expansion.
func (f *frontier) isOpen(id string) bool {
	_, ok := f.open[id]

	return ok
}

// len returns the number of open nodes.
func (f *frontier) len() int { return len(f.open) }
