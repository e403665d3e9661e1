package engine

import "github.com/katalvlaran/cobweb/graph"

// Metric is the narrow estimation capability a heuristic module needs:
// an admissible lower-bound distance between two nodes, or ok=false if
// no estimate is available for this pair (e.g. one endpoint lies
// outside the metric's precomputed coverage). Implemented by
// metric.Haversine and metric.Landmark.
type Metric interface {
	Distance(from, to int64) (float64, bool)
}

// HeuristicModule adapts a Metric into an engine Module, turning any
// admissible distance metric into an A*-style estimator. Both the
// straight-line (Haversine) heuristic and the ALT/landmark heuristic
// are this same module wrapping different Metric implementations —
// neither needs its own Engine variant.
type HeuristicModule struct {
	BaseModule

	metric Metric
}

// NewHeuristicModule wraps metric as an engine Module.
func NewHeuristicModule(metric Metric) *HeuristicModule {
	return &HeuristicModule{metric: metric}
}

// Estimate implements the estimator capability.
func (m *HeuristicModule) Estimate(node, destination int64) (float64, bool) {
	return m.metric.Distance(node, destination)
}

// ModeCar is the single fixed transportation mode every edge in the
// current graph model carries implicitly (graph.Edge has no mode field
// yet; per spec.md §4.7 step 5, "currently fixed to CAR"). ModeFilter
// checks this tag against the requested mode set, giving the mode-
// filtering open question a real, pluggable decision point without
// requiring an edge-level mode field until one is needed.
const ModeCar = 0

// ModeFilter restricts traversal to edges matching an allowed travel
// mode. An empty allowed set accepts every edge (no modes requested,
// so no restriction applies); a non-empty set rejects every edge whose
// mode is not a member.
type ModeFilter struct {
	BaseModule

	allowed map[int]bool
}

// NewModeFilter builds a ModeFilter accepting the given modes. An empty
// set accepts every edge.
func NewModeFilter(modes ...int) *ModeFilter {
	allowed := make(map[int]bool, len(modes))
	for _, m := range modes {
		allowed[m] = true
	}

	return &ModeFilter{allowed: allowed}
}

// ConsiderEdge implements the edgeFilter capability. Cost is passed
// through unchanged; this module only ever rejects, never reweights.
func (m *ModeFilter) ConsiderEdge(_ graph.Edge, baseCost float64) (float64, bool) {
	if len(m.allowed) == 0 {
		return baseCost, true
	}
	if !m.allowed[ModeCar] {
		return 0, false
	}

	return baseCost, true
}
