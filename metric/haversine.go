// Package metric provides admissible lower-bound distance estimators
// consumed by engine.HeuristicModule: a straight-line geodesic metric
// for plain A*, and a landmark/triangle-inequality metric for ALT
// search. Both satisfy engine.Metric.
package metric

import "github.com/katalvlaran/cobweb/graph"

// Haversine estimates remaining travel cost as great-circle distance
// divided by the graph's fastest known edge speed, the admissible
// straight-line heuristic used by plain A*: it never overestimates,
// since no edge in the graph covers distance faster than that speed.
type Haversine struct {
	g        *graph.Graph
	maxSpeed float64 // meters/unit-cost, cached at construction
}

// NewHaversine wraps g, caching its maximum implied edge speed so
// Distance need not rescan the graph per call.
func NewHaversine(g *graph.Graph) *Haversine {
	return &Haversine{g: g, maxSpeed: g.MaxEdgeSpeed()}
}

// Distance returns the great-circle distance between from and to,
// divided by maxSpeed, giving a lower bound on travel cost. Returns
// ok=false if either node is absent from the graph or maxSpeed is
// non-positive (degenerate empty graph).
func (h *Haversine) Distance(from, to int64) (float64, bool) {
	if h.maxSpeed <= 0 {
		return 0, false
	}

	a, ok := h.g.NodeByID(from)
	if !ok {
		return 0, false
	}
	b, ok := h.g.NodeByID(to)
	if !ok {
		return 0, false
	}

	meters := graph.HaversineMeters(float64(a.Lat), float64(a.Lon), float64(b.Lat), float64(b.Lon))

	return meters / h.maxSpeed, true
}
