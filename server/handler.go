package server

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/cobweb/engine"
	"github.com/katalvlaran/cobweb/graph"
)

// ServeRoute implements POST /route (spec.md §4.7): resolve, compute,
// materialize, respond. Never returns an HTTP error for "no route" —
// that is a well-formed empty-journeys response, not a failure.
func (h *Handler) ServeRoute(w http.ResponseWriter, r *http.Request) {
	start := h.nowFn()

	if r.Method != http.MethodPost {
		requestsTotal.WithLabelValues("method_not_allowed").Inc()
		w.WriteHeader(http.StatusMethodNotAllowed)

		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("malformed route request body")
		requestsTotal.WithLabelValues("bad_request").Inc()
		w.WriteHeader(http.StatusBadRequest)

		return
	}

	resp, rerr := h.buildResponse(r.Context(), req, start)
	if rerr != nil && rerr.kind == kindBadRequest {
		requestsTotal.WithLabelValues("bad_request").Inc()
		w.WriteHeader(http.StatusBadRequest)

		return
	}
	if rerr != nil && rerr.kind == kindInternalError {
		log.Error().Err(rerr.err).Msg("internal error computing route")
		requestsTotal.WithLabelValues("internal_error").Inc()
		w.WriteHeader(http.StatusInternalServerError)

		return
	}

	requestsTotal.WithLabelValues("ok").Inc()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error().Err(err).Msg("writing route response")
	}
}

// ServePreflight implements the OPTIONS CORS preflight for /route.
func (h *Handler) ServePreflight(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.WriteHeader(http.StatusNoContent)
}

// buildResponse resolves from/to, runs the engine, and materializes the
// journey document. Timing includes the database name-resolution
// lookups (the decided reading of the ambiguous handler-timing open
// question — see DESIGN.md).
func (h *Handler) buildResponse(ctx context.Context, req Request, start time.Time) (*Response, *routeError) {
	defer func() {
		routeDuration.Observe(h.nowFn().Sub(start).Seconds())
	}()

	if req.From == 0 && req.To == 0 {
		return nil, &routeError{kind: kindBadRequest, err: errMissingField}
	}

	resp := &Response{From: req.From, To: req.To, Journeys: []Journey{}}

	fromInternal, err := h.db.InternalByOSM(req.From)
	if err != nil {
		resp.Time = elapsedMillis(start, h.nowFn())

		return resp, nil // NotResolvable: empty journeys, not an error
	}
	toInternal, err := h.db.InternalByOSM(req.To)
	if err != nil {
		resp.Time = elapsedMillis(start, h.nowFn())

		return resp, nil
	}

	eng, err := h.engineFor(req.Modes)
	if err != nil {
		return nil, &routeError{kind: kindInternalError, err: err}
	}

	path, err := eng.ComputeShortestPath([]int64{fromInternal}, toInternal)
	if err != nil && !errors.Is(err, engine.ErrNoSources) {
		return nil, &routeError{kind: kindInternalError, err: err}
	}
	if path == nil {
		resp.Time = elapsedMillis(start, h.nowFn())

		return resp, nil // NoRoute: empty journeys
	}

	journey := h.materializeJourney(req, path)
	resp.Journeys = []Journey{journey}
	resp.Time = elapsedMillis(start, h.nowFn())

	return resp, nil
}

// materializeJourney implements spec.md §4.7 steps 3-5.
func (h *Handler) materializeJourney(req Request, path *engine.Path) Journey {
	durationMS := int64(math.Ceil(path.TotalCost() * 1000))
	journey := Journey{
		DepTime: req.DepTime,
		ArrTime: req.DepTime + durationMS,
	}

	source := path.Source()
	journey.Route = append(journey.Route, h.nodeElement(source))

	if path.Length() > 0 {
		journey.Route = append(journey.Route, h.pathElement(source, path.Edges()))
		journey.Route = append(journey.Route, h.nodeElement(path.Destination()))
	}

	return journey
}

// nodeElement builds a "node" RouteElement for an internal node ID.
func (h *Handler) nodeElement(nodeID int64) RouteElement {
	name := h.resolvedNodeName(nodeID)

	n, ok := h.g.NodeByID(nodeID)
	geom := [][2]float64{}
	if ok {
		geom = [][2]float64{{float64(n.Lat), float64(n.Lon)}}
	}

	return RouteElement{Type: "node", Name: name, Geom: geom}
}

// pathElement builds a "path" RouteElement spanning edges, whose name is
// the source node's name followed by the name of every way whose id
// differs from the previous edge's way id, and whose geometry starts at
// source and continues through every edge's destination.
func (h *Handler) pathElement(source int64, edges []graph.Edge) RouteElement {
	name := h.resolvedNodeName(source)

	var lastWay int64
	hasLastWay := false
	for _, e := range edges {
		if !hasLastWay || e.WayID != lastWay {
			if wn, err := h.db.WayName(e.WayID); err == nil && wn != "" {
				name += "," + wn
			}
			lastWay = e.WayID
			hasLastWay = true
		}
	}

	geom := make([][2]float64, 0, len(edges)+1)
	if n, ok := h.g.NodeByID(source); ok {
		geom = append(geom, [2]float64{float64(n.Lat), float64(n.Lon)})
	}
	for _, e := range edges {
		if n, ok := h.g.NodeByID(e.To); ok {
			geom = append(geom, [2]float64{float64(n.Lat), float64(n.Lon)})
		}
	}

	return RouteElement{Type: "path", Mode: ModeCar, Name: name, Geom: geom}
}

// resolvedNodeName returns the database name for an internal node ID,
// or "" if the node is not resolvable to an OSM id or has no name.
func (h *Handler) resolvedNodeName(nodeID int64) string {
	osmID, err := h.db.OSMByInternal(nodeID)
	if err != nil {
		return ""
	}
	name, err := h.db.NodeName(osmID)
	if err != nil {
		return ""
	}

	return name
}

func elapsedMillis(start, end time.Time) int64 {
	return end.Sub(start).Milliseconds()
}
