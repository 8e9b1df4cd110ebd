package dijkstra

import (
	"container/heap"

	"github.com/yourbasic/bit"

	"github.com/katalvlaran/roadnet/core"
)

// frontier yields the unvisited node with the smallest tentative distance,
// lowest index first on ties.
type frontier interface {
	// push records that node v now has tentative distance d.
	push(v int, d int64)
	// pop returns the next node to finalize, or false if no unvisited node
	// has a finite distance.
	pop() (int, bool)
}

// scanFrontier reads the runner's dist slice directly; push is a no-op.
type scanFrontier struct {
	dist    []int64
	visited *bit.Set
}

func (f *scanFrontier) push(int, int64) {}

func (f *scanFrontier) pop() (int, bool) {
	best := core.Unreachable
	bestIdx := -1
	var i int
	var d int64
	for i, d = range f.dist {
		// strict < keeps the lowest index among equal distances
		if d < best && !f.visited.Contains(i) {
			best = d
			bestIdx = i
		}
	}

	return bestIdx, bestIdx >= 0
}

// heapFrontier is a lazy decrease-key min-heap: improved distances are pushed
// as new items and stale items are dropped when popped.
type heapFrontier struct {
	pq      nodePQ
	dist    []int64
	visited *bit.Set
}

func newHeapFrontier(dist []int64, visited *bit.Set, capacity int) *heapFrontier {
	f := &heapFrontier{
		pq:      make(nodePQ, 0, capacity),
		dist:    dist,
		visited: visited,
	}
	heap.Init(&f.pq)

	return f
}

func (f *heapFrontier) push(v int, d int64) {
	heap.Push(&f.pq, nodeItem{idx: v, dist: d})
}

func (f *heapFrontier) pop() (int, bool) {
	var item nodeItem
	for f.pq.Len() > 0 {
		item = heap.Pop(&f.pq).(nodeItem)
		// Skip finalized nodes and entries superseded by a later improvement.
		if f.visited.Contains(item.idx) || item.dist != f.dist[item.idx] {
			continue
		}

		return item.idx, true
	}

	return -1, false
}

// nodeItem is a (node, distance) pair stored in the heap.
type nodeItem struct {
	idx  int   // node index in the snapshot
	dist int64 // tentative distance when pushed
}

// nodePQ is a min-heap of nodeItem ordered by (dist, idx).
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by index so ties match the linear scan.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].idx < pq[j].idx
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop is called by heap.Pop and removes the last element.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
