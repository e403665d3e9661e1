// Package cobweb answers point-to-point shortest-path queries over a
// road network derived from OpenStreetMap data, and exposes those
// queries over a small HTTP/JSON endpoint.
//
// The routing core is organized under focused subpackages:
//
//	graph/        — in-memory directed multigraph of road nodes and edges
//	metric/       — admissible distance estimators (haversine, ALT)
//	landmark/     — greedy-farthest landmark selection and distance tables
//	tarjan/       — iterative strongly-connected-components pass
//	engine/       — module-composable Dijkstra/A*/ALT shortest-path engine
//	routefactory/ — assembles a concrete engine from a graph and policy
//	citydb/       — OSM-id/internal-id and place-name lookup
//	config/       — YAML-backed server configuration
//	server/       — HTTP handler, routing, and journey materialization
//	cmd/cobweb/   — CLI entry point wiring the above into a running server
//
// A request flows: resolved to internal node IDs via the city database,
// through the shortest-path engine on the frozen graph, into a journey
// document, and out as JSON.
package cobweb
