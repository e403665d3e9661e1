// Package server exposes the routing core over HTTP/JSON: a POST
// /route handler implementing the request/response contract, a CORS
// preflight handler, and a Prometheus /metrics endpoint, wired with
// chi routing and zerolog structured logging the way the ambient
// stack's service-handler-over-a-struct shape is used elsewhere in the
// pack (e.g. services/trace's Handlers-wrapping-a-Service pattern).
package server

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/katalvlaran/cobweb/citydb"
	"github.com/katalvlaran/cobweb/engine"
	"github.com/katalvlaran/cobweb/graph"
	"github.com/katalvlaran/cobweb/routefactory"
)

// kind classifies a routing failure for HTTP status mapping.
type kind int

const (
	kindNone kind = iota
	kindBadRequest
	kindNotResolvable
	kindNoRoute
	kindInternalError
)

// routeError carries a classified failure plus the underlying cause.
type routeError struct {
	kind kind
	err  error
}

func (e *routeError) Error() string { return e.err.Error() }
func (e *routeError) Unwrap() error { return e.err }

var errMissingField = errors.New("server: request missing required field")

// Request is the parsed JSON body of POST /route. Modes carries
// transportation-mode codes (spec.md §6: `"modes": [<int>]`); an empty
// or omitted set means "any mode" (see engine.ModeFilter).
type Request struct {
	From    int64 `json:"from"`
	To      int64 `json:"to"`
	DepTime int64 `json:"depTime"`
	Modes   []int `json:"modes"`
}

// Response is the JSON body returned by POST /route.
type Response struct {
	Time     int64     `json:"time"`
	From     int64     `json:"from"`
	To       int64     `json:"to"`
	Journeys []Journey `json:"journeys"`
}

// Journey is one planned trip within a Response.
type Journey struct {
	DepTime int64          `json:"depTime"`
	ArrTime int64          `json:"arrTime"`
	Route   []RouteElement `json:"route"`
}

// RouteElement is one segment of a Journey's route: either a "node" or
// a "path" element, distinguished by Type.
type RouteElement struct {
	Type string     `json:"type"`
	Name string     `json:"name"`
	Mode int        `json:"mode,omitempty"`
	Geom [][2]float64 `json:"geom"`
}

// ModeCar is the single fixed transportation mode currently modeled
// (spec.md: "currently fixed to CAR; a future refinement may split the
// path on mode changes").
const ModeCar = engine.ModeCar

// Handler serves the routing HTTP API over a fixed graph and city
// database. Engines are assembled per distinct requested mode set via
// routefactory and cached, since routefactory.New is cheap to call but
// a route request's modes determine which engine.ModeFilter must run —
// the graph and policy are otherwise fixed for the process lifetime.
type Handler struct {
	g      *graph.Graph
	db     *citydb.Database
	policy routefactory.Policy
	opts   []routefactory.Option
	nowFn  func() time.Time

	mu      sync.Mutex
	engines map[string]*engine.Engine
}

// NewHandler builds a Handler assembling engines over g for policy
// (plus any fixed opts, e.g. routefactory.WithLandmarkTable). nowFn
// defaults to time.Now; tests inject a fixed clock.
func NewHandler(g *graph.Graph, db *citydb.Database, policy routefactory.Policy, opts ...routefactory.Option) *Handler {
	return &Handler{
		g:       g,
		db:      db,
		policy:  policy,
		opts:    opts,
		nowFn:   time.Now,
		engines: make(map[string]*engine.Engine),
	}
}

// engineFor returns the cached engine for the given requested mode set,
// assembling and caching it on first use. This is how a request's
// "modes" field actually changes routing behavior end-to-end.
func (h *Handler) engineFor(modes []int) (*engine.Engine, error) {
	key := modesKey(modes)

	h.mu.Lock()
	defer h.mu.Unlock()

	if eng, ok := h.engines[key]; ok {
		return eng, nil
	}

	opts := make([]routefactory.Option, 0, len(h.opts)+1)
	opts = append(opts, h.opts...)
	opts = append(opts, routefactory.WithModes(modes...))

	eng, err := routefactory.New(h.g, h.policy, opts...)
	if err != nil {
		return nil, err
	}
	h.engines[key] = eng

	return eng, nil
}

// modesKey canonicalizes a mode set into a cache key independent of
// request ordering or duplicates.
func modesKey(modes []int) string {
	sorted := append([]int(nil), modes...)
	sort.Ints(sorted)

	parts := make([]string, len(sorted))
	for i, m := range sorted {
		parts[i] = strconv.Itoa(m)
	}

	return strings.Join(parts, ",")
}
