package engine

import "container/heap"

// pqItem is one entry in the lazy-decrease-key priority queue: a node,
// the priority key it was pushed with (tentative cost, plus heuristic
// estimate when every estimating module could provide one), and the tentative cost
// itself (kept separately since the key may include a heuristic term).
type pqItem struct {
	node int64
	key  float64
	cost float64
}

// nodePQ is a min-heap of *pqItem ordered by (key asc, node id asc) —
// the node-id tie-break makes settlement order deterministic, per
// spec.md's "Tie-break by node identity for determinism." Stale entries
// (a node pushed more than once as its tentative cost improves) are
// simply skipped when popped if the popping side finds the node already
// settled; this is the same lazy-decrease-key strategy as the teacher's
// nodePQ in dijkstra/dijkstra.go.
type nodePQ []*pqItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].key != pq[j].key {
		return pq[i].key < pq[j].key
	}

	return pq[i].node < pq[j].node
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*pqItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

var _ = heap.Interface(&nodePQ{})
