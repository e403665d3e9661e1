// Package routefactory assembles a concrete engine.Engine from a frozen
// graph.Graph plus a routing Policy, the same functional-options shape
// the teacher's builder package used to assemble graph constructors
// (BuilderOption/newBuilderConfig), generalized here to assembling a
// search engine's module list instead of a graph.
package routefactory

import (
	"errors"

	"github.com/katalvlaran/cobweb/engine"
	"github.com/katalvlaran/cobweb/graph"
	"github.com/katalvlaran/cobweb/landmark"
	"github.com/katalvlaran/cobweb/metric"
)

// Policy selects which search strategy New assembles.
type Policy int

const (
	// PolicyDijkstra runs plain Dijkstra: no heuristic module at all.
	PolicyDijkstra Policy = iota
	// PolicyAStarHaversine adds a straight-line geodesic heuristic.
	PolicyAStarHaversine
	// PolicyAStarLandmarks adds an ALT/landmark heuristic; requires
	// WithLandmarkTable.
	PolicyAStarLandmarks
)

// ErrLandmarkTableRequired is returned by New when PolicyAStarLandmarks
// is requested without a landmark table.
var ErrLandmarkTableRequired = errors.New("routefactory: PolicyAStarLandmarks requires WithLandmarkTable")

// config holds the options New assembles a policy's module list from.
type config struct {
	modes         []int
	landmarkTable *landmark.Table
}

// Option customizes engine assembly.
type Option func(cfg *config)

// WithModes restricts traversal to the given travel modes. An empty or
// omitted set accepts every edge (see engine.ModeFilter).
func WithModes(modes ...int) Option {
	return func(cfg *config) {
		cfg.modes = modes
	}
}

// WithLandmarkTable supplies the precomputed ALT table PolicyAStarLandmarks
// needs.
func WithLandmarkTable(table *landmark.Table) Option {
	return func(cfg *config) {
		cfg.landmarkTable = table
	}
}

// New assembles an *engine.Engine over g for policy, applying opts.
func New(g *graph.Graph, policy Policy, opts ...Option) (*engine.Engine, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	modules := []engine.Module{engine.NewModeFilter(cfg.modes...)}

	switch policy {
	case PolicyDijkstra:
		// no heuristic module
	case PolicyAStarHaversine:
		modules = append(modules, engine.NewHeuristicModule(metric.NewHaversine(g)))
	case PolicyAStarLandmarks:
		if cfg.landmarkTable == nil {
			return nil, ErrLandmarkTableRequired
		}
		modules = append(modules, engine.NewHeuristicModule(metric.NewLandmark(cfg.landmarkTable)))
	}

	return engine.New(g, modules...)
}
