package engine

import "github.com/katalvlaran/cobweb/graph"

// Path is an ordered sequence of edges whose destinations chain
// (edges[i].To == edges[i+1].From). An empty Path represents "source
// equals destination": Source() and Destination() both report the
// query node and TotalCost() is 0.
type Path struct {
	edges       []graph.Edge
	source      int64
	destination int64
}

// newPath builds a Path from a reconstructed edge sequence plus the
// query source/destination, used as the fallback identity for an empty
// path (spec.md §3: "source node (first edge's source or the query
// source if empty)").
func newPath(edges []graph.Edge, source, destination int64) *Path {
	return &Path{edges: edges, source: source, destination: destination}
}

// Source returns the path's source node: the first edge's From, or the
// query source if the path has no edges.
func (p *Path) Source() int64 {
	if len(p.edges) == 0 {
		return p.source
	}

	return p.edges[0].From
}

// Destination returns the path's destination node: the last edge's To,
// or the query source if the path has no edges.
func (p *Path) Destination() int64 {
	if len(p.edges) == 0 {
		return p.source
	}

	return p.edges[len(p.edges)-1].To
}

// TotalCost returns the sum of every edge's raw Cost. Deliberately
// computed from the returned edges rather than cached from the
// algorithm's internal (possibly module-adjusted) tentative distance,
// so that "sum of edge costs equals TotalCost" always holds by
// construction (spec.md §8 invariant 1).
func (p *Path) TotalCost() float64 {
	var total float64
	for _, e := range p.edges {
		total += e.Cost
	}

	return total
}

// Length returns the number of edges in the path.
func (p *Path) Length() int { return len(p.edges) }

// Edges returns the path's edges in traversal order. The returned slice
// is a fresh copy.
func (p *Path) Edges() []graph.Edge {
	out := make([]graph.Edge, len(p.edges))
	copy(out, p.edges)

	return out
}
