package engine

import (
	"container/heap"

	"github.com/katalvlaran/cobweb/graph"
)

// ComputeShortestPath runs a multi-source Dijkstra (or, if a module
// supplies an admissible estimate, A*/ALT) search from sources to
// destination and returns the cheapest admissible Path.
//
// Returns (nil, nil) — not an error — if destination is unreachable
// from every source under the active edge filters, or if destination
// is absent from the graph. Returns an error only for a malformed
// query (no sources at all).
//
// Sources not present in the graph are silently skipped, matching the
// multi-source seeding used by landmark table construction where a
// caller may pass a superset of known node IDs.
func (e *Engine) ComputeShortestPath(sources []int64, destination int64) (*Path, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	if !e.g.ContainsNodeID(destination) {
		return nil, nil
	}

	live := liveSources(e.g, sources)
	if len(live) == 0 {
		return nil, nil
	}

	r := newSearchRunner(e)
	r.seed(live)
	r.drain(destination)

	if _, ok := r.settled[destination]; !ok {
		return nil, nil
	}

	edges := r.reconstruct(destination)

	var emptyPathSource int64
	if len(edges) == 0 {
		emptyPathSource = destination
	}

	return newPath(edges, emptyPathSource, destination), nil
}

// ComputeShortestPathCostsReachable runs Dijkstra to exhaustion from
// sources with heuristics disabled (a one-to-all sweep has no fixed
// destination to estimate toward) and returns every reachable node's
// settled cost, keyed by node ID. Used by landmark table construction.
func (e *Engine) ComputeShortestPathCostsReachable(sources []int64) (map[int64]float64, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	live := liveSources(e.g, sources)
	if len(live) == 0 {
		return map[int64]float64{}, nil
	}

	r := newSearchRunner(e)
	r.seed(live)
	r.drain(-1)

	out := make(map[int64]float64, len(r.settled))
	for node, cost := range r.settled {
		out[node] = cost
	}

	return out, nil
}

func liveSources(g *graph.Graph, sources []int64) []int64 {
	live := make([]int64, 0, len(sources))
	for _, s := range sources {
		if g.ContainsNodeID(s) {
			live = append(live, s)
		}
	}

	return live
}

// searchRunner holds the per-query mutable state for one Dijkstra/A*
// pass: the frontier priority queue, the settled-cost map, and the
// best-known parent edge per node for path reconstruction. A fresh
// runner is created per query so an Engine itself stays stateless and
// safe for concurrent queries.
type searchRunner struct {
	e *Engine

	pq      nodePQ
	settled map[int64]float64
	best    map[int64]float64 // least tentative cost seen so far, pre-settlement
	parent  map[int64]graph.Edge
}

func newSearchRunner(e *Engine) *searchRunner {
	return &searchRunner{
		e:       e,
		pq:      make(nodePQ, 0),
		settled: make(map[int64]float64),
		best:    make(map[int64]float64),
		parent:  make(map[int64]graph.Edge),
	}
}

// seed pushes every source at cost 0, the multi-source Dijkstra
// initialization used both for one-to-one queries and for landmark
// table population (spec.md §4.5).
func (r *searchRunner) seed(sources []int64) {
	for _, s := range sources {
		heap.Push(&r.pq, &pqItem{node: s, key: 0, cost: 0})
	}
}

// drain is the shared Dijkstra/A* relaxation loop. target < 0 means
// "no fixed destination, run to exhaustion" (heuristics stay off, since
// there is nothing to estimate distance toward).
func (r *searchRunner) drain(target int64) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*pqItem)

		if _, already := r.settled[item.node]; already {
			continue // stale lazy-decrease-key entry
		}
		r.settled[item.node] = item.cost

		if r.e.shouldAbort(item.node, item.cost) {
			return
		}
		if target >= 0 && item.node == target {
			return
		}

		for _, edge := range r.e.g.OutgoingEdges(item.node) {
			cost, ok := r.e.considerEdge(edge)
			if !ok {
				continue
			}

			next := item.cost + cost
			if _, done := r.settled[edge.To]; done {
				continue
			}
			if knownBest, seen := r.best[edge.To]; seen && knownBest <= next {
				continue // no improvement over a candidate already queued
			}
			r.best[edge.To] = next
			r.parent[edge.To] = edge

			key := next
			if target >= 0 {
				if est, ok := r.e.combineEstimates(edge.To, target); ok {
					key = next + est
				}
			}

			heap.Push(&r.pq, &pqItem{node: edge.To, key: key, cost: next})
		}
	}
}

// reconstruct walks parent edges backward from destination to a seeded
// source, returning the edges in source-to-destination order. An empty
// result means destination is itself one of the seeded sources.
func (r *searchRunner) reconstruct(destination int64) []graph.Edge {
	var rev []graph.Edge

	cur := destination
	for {
		edge, ok := r.parent[cur]
		if !ok {
			break
		}
		rev = append(rev, edge)
		cur = edge.From
	}

	out := make([]graph.Edge, len(rev))
	for i, edge := range rev {
		out[len(rev)-1-i] = edge
	}

	return out
}
