package graph

import "sort"

// AddEdge inserts a directed edge e. Both endpoints must already be
// present as nodes (ErrDanglingEdge otherwise) and e.Cost must be
// non-negative (ErrNegativeCost otherwise). Edges are immutable once
// inserted: the same (From, To, WayID, Cost) tuple may be added more
// than once, each producing its own incidence-set entry, since the
// road network is a multigraph (parallel ways between the same pair of
// intersections are common).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(e Edge) error {
	if e.Cost < 0 {
		return ErrNegativeCost
	}

	g.muVert.RLock()
	_, fromOK := g.nodes[e.From]
	_, toOK := g.nodes[e.To]
	g.muVert.RUnlock()
	if !fromOK || !toOK {
		return ErrDanglingEdge
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	h := g.nextHandle
	g.nextHandle++
	g.edges[h] = e
	g.outAdj[e.From][h] = struct{}{}
	g.inAdj[e.To][h] = struct{}{}

	return nil
}

// RemoveEdge deletes the first stored edge matching e's fields exactly.
// Returns whether a matching edge was found and removed.
//
// Complexity: O(degree(e.From)).
func (g *Graph) RemoveEdge(e Edge) bool {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	for h := range g.outAdj[e.From] {
		if g.edges[h] == e {
			delete(g.outAdj[e.From], h)
			delete(g.inAdj[e.To], h)
			delete(g.edges, h)

			return true
		}
	}

	return false
}

// EdgeCount returns the number of edges currently in the graph.
//
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// OutgoingEdges returns a snapshot of every edge leaving id, sorted by
// (To, WayID, Cost) for deterministic iteration (Tarjan's successor
// order must be stable for reproducible SCC output). The returned slice
// is a fresh copy; it is stable with respect to further mutation of the
// graph (a non-ownership view in the sense that the caller cannot
// mutate the graph through it, but it does not alias internal storage
// either).
//
// Complexity: O(d log d), d = out-degree(id).
func (g *Graph) OutgoingEdges(id int64) []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	handles := g.outAdj[id]
	out := make([]Edge, 0, len(handles))
	for h := range handles {
		out = append(out, g.edges[h])
	}
	sortEdges(out)

	return out
}

// IncomingEdges returns a snapshot of every edge arriving at id, sorted
// by (From, WayID, Cost) for deterministic iteration.
//
// Complexity: O(d log d), d = in-degree(id).
func (g *Graph) IncomingEdges(id int64) []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	handles := g.inAdj[id]
	out := make([]Edge, 0, len(handles))
	for h := range handles {
		out = append(out, g.edges[h])
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		if out[i].WayID != out[j].WayID {
			return out[i].WayID < out[j].WayID
		}

		return out[i].Cost < out[j].Cost
	})

	return out
}

// sortEdges orders edges by (To, WayID, Cost) ascending.
func sortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].To != edges[j].To {
			return edges[i].To < edges[j].To
		}
		if edges[i].WayID != edges[j].WayID {
			return edges[i].WayID < edges[j].WayID
		}

		return edges[i].Cost < edges[j].Cost
	})
}

// MaxEdgeSpeed returns the fastest implied speed (meters/second) among
// all edges, derived from each edge's haversine length over its cost.
// Zero-cost or degenerate edges are skipped. Used by metric.Haversine to
// pick a single admissible speed bound for the whole graph. Returns 0 if
// no edge yields a usable speed.
//
// Complexity: O(E).
func (g *Graph) MaxEdgeSpeed() float64 {
	g.muVert.RLock()
	nodes := g.nodes
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var maxSpeed float64
	for _, e := range g.edges {
		if e.Cost <= 0 {
			continue
		}
		from, ok := nodes[e.From]
		if !ok {
			continue
		}
		to, ok := nodes[e.To]
		if !ok {
			continue
		}
		dist := haversineMeters(float64(from.Lat), float64(from.Lon), float64(to.Lat), float64(to.Lon))
		speed := dist / e.Cost
		if speed > maxSpeed {
			maxSpeed = speed
		}
	}

	return maxSpeed
}
