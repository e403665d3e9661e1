// Package engine implements a generic Dijkstra shortest-path skeleton
// driven by a composable set of Modules, the same way dijkstra.Options
// in the teacher package drove a single fixed algorithm — except here
// the hooks are pluggable so A* (via a heuristic Module) and ALT
// landmark search are both instances of one engine rather than separate
// implementations.
//
// Complexity:
//
//   - Time:  O((V + E) log V) per one-to-one or one-to-all query.
//   - Each node is extracted from the priority queue at most once.
//   - Each edge relaxation may push into the queue (lazy decrease-key).
//   - Space: O(V + E).
package engine

import (
	"errors"

	"github.com/katalvlaran/cobweb/graph"
)

// Sentinel errors returned by the engine.
var (
	// ErrNilGraph indicates a nil *graph.Graph was passed to New.
	ErrNilGraph = errors.New("engine: graph is nil")

	// ErrNoSources indicates compute was called with an empty source set.
	ErrNoSources = errors.New("engine: at least one source is required")
)

// Module is the capability set a Dijkstra variant plugs in: edge
// admissibility/cost adjustment, heuristic estimation, and early abort.
// Each capability is optional; the engine checks at runtime which of the
// narrower interfaces below a Module implements, so a Module needs to
// satisfy only the methods it actually uses.
type Module interface {
	// moduleMarker is unexported so Module cannot be satisfied
	// accidentally by unrelated types; concrete modules embed
	// BaseModule to pick it up for free.
	moduleMarker()
}

// edgeFilter is implemented by modules that adjust or reject edges.
type edgeFilter interface {
	// ConsiderEdge returns the cost to use for e (which may be greater
	// than e.Cost but never less, to preserve admissibility) or ok=false
	// to exclude e from relaxation entirely.
	ConsiderEdge(e graph.Edge, baseCost float64) (cost float64, ok bool)
}

// estimator is implemented by modules that provide an admissible
// heuristic lower bound on the remaining cost to destination.
type estimator interface {
	// Estimate returns a lower-bound cost from node to destination, or
	// ok=false if this module cannot estimate for this pair (in which
	// case no heuristic term is used for this pair at all — see
	// combineEstimates).
	Estimate(node, destination int64) (estimate float64, ok bool)
}

// aborter is implemented by modules that can request early termination.
type aborter interface {
	// ShouldAbort reports whether the search should stop now that
	// settledNode has been settled at settledCost. Must be monotone:
	// once true for a run, it should remain true for any later,
	// costlier settlement.
	ShouldAbort(settledNode int64, settledCost float64) bool
}

// BaseModule is embedded by concrete Module implementations that only
// need a subset of the capability interfaces; it supplies the
// unexported marker method so embedders satisfy Module without
// boilerplate.
type BaseModule struct{}

func (BaseModule) moduleMarker() {}

// Engine runs Dijkstra over a fixed, read-only graph using a fixed,
// ordered list of Modules. One Engine value may serve many concurrent
// queries: Engine itself holds no per-query state (all of that lives in
// a fresh runner per call), matching the teacher's pattern of a stateless
// package-level entry point plus an internal per-call runner struct.
type Engine struct {
	g       *graph.Graph
	modules []Module
}

// New constructs an Engine over g with the given modules, applied in the
// order given (filter: all must accept; estimate: combined by maximum;
// abort: any module requesting abort stops the search).
func New(g *graph.Graph, modules ...Module) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return &Engine{g: g, modules: modules}, nil
}

// combineEstimates returns the maximum estimate reported by the
// estimator modules for (node, destination), and ok=true only if there
// is at least one estimator and every one of them could estimate for
// this pair; otherwise the caller keys on tentative cost alone.
// Combining admissible heuristics by
// maximum preserves admissibility (spec.md §4.5): each is individually a
// lower bound, so the greatest of several lower bounds is still a lower
// bound.
func (e *Engine) combineEstimates(node, destination int64) (float64, bool) {
	var (
		best  float64
		found bool
	)
	for _, m := range e.modules {
		est, ok := m.(estimator)
		if !ok {
			continue
		}
		v, ok := est.Estimate(node, destination)
		if !ok {
			return 0, false
		}
		if !found || v > best {
			best = v
			found = true
		}
	}

	return best, found
}

// considerEdge runs e's edge filters in order; the first module to
// reject the edge wins (None short-circuits). A cost adjustment from one
// module feeds as the base cost into the next, so filters compose.
func (e *Engine) considerEdge(edge graph.Edge) (float64, bool) {
	cost := edge.Cost
	for _, m := range e.modules {
		f, ok := m.(edgeFilter)
		if !ok {
			continue
		}
		adjusted, ok := f.ConsiderEdge(edge, cost)
		if !ok {
			return 0, false
		}
		cost = adjusted
	}

	return cost, true
}

// shouldAbort reports whether any module requests early termination.
func (e *Engine) shouldAbort(node int64, cost float64) bool {
	for _, m := range e.modules {
		if a, ok := m.(aborter); ok && a.ShouldAbort(node, cost) {
			return true
		}
	}

	return false
}
