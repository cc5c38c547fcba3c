package program

// readyItem is one entry of the readiness priority queue: a node together
// with the clamped priority key it was pushed at.
type readyItem struct {
	node int
	key  int
}

// readyPQ is a min-heap of *readyItem ordered by key ascending, ties broken
// by node index ascending (spec.md §4.D step 3). Modeled on the
// nodeItem/nodePQ pair used for Dijkstra's frontier.
type readyPQ []*readyItem

func (pq readyPQ) Len() int { return len(pq) }

func (pq readyPQ) Less(i, j int) bool {
	if pq[i].key != pq[j].key {
		return pq[i].key < pq[j].key
	}

	return pq[i].node < pq[j].node
}

func (pq readyPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *readyPQ) Push(x interface{}) { *pq = append(*pq, x.(*readyItem)) }

func (pq *readyPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
