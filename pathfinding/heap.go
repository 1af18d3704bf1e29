// SPDX-License-Identifier: MIT

package pathfinding

// nodeItem is one heap entry. key is the priority (distance for Dijkstra,
// g+h for A*), seq the insertion counter that breaks ties FIFO.
type nodeItem struct {
	idx int
	key int
	seq int
}

// nodePQ is a min-heap of nodeItem ordered by (key, seq).
// Decrease-key is lazy: a better key pushes a fresh entry and the outdated
// one is skipped when popped.
type nodePQ []nodeItem

// Len returns the number of entries.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by key, then by insertion.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].key != pq[j].key {
		return pq[i].key < pq[j].key
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two entries.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

// Pop is called by heap.Pop.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
