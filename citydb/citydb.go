// Package citydb provides the OSM-id/internal-id and place-name lookup
// collaborator the HTTP handler consults when resolving query node
// IDs to display names and way names, loadable from a YAML fixture the
// same way the teacher's ambient configuration is yaml.v3-backed.
package citydb

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNotFound indicates a lookup key has no entry in the database.
var ErrNotFound = errors.New("citydb: not found")

// nodeEntry is one node's stored identity: its OpenStreetMap ID, the
// internal graph node ID it maps to, and its display name.
type nodeEntry struct {
	OSMID  int64  `yaml:"osm_id"`
	NodeID int64  `yaml:"node_id"`
	Name   string `yaml:"name"`
}

// wayEntry is one way's display name.
type wayEntry struct {
	WayID int64  `yaml:"way_id"`
	Name  string `yaml:"name"`
}

// fixture is the top-level shape of a citydb YAML file.
type fixture struct {
	Nodes []nodeEntry `yaml:"nodes"`
	Ways  []wayEntry  `yaml:"ways"`
}

// Database is an in-memory, read-only index between OSM node IDs,
// internal graph node IDs, and both node and way display names. It
// implements the collaborator interface the routing handler consults
// to resolve query IDs and label route elements.
type Database struct {
	nodesByOSM      map[int64]nodeEntry
	nodesByInternal map[int64]nodeEntry
	wayNames        map[int64]string
}

// Load reads a YAML fixture from path and builds a Database.
func Load(path string) (*Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("citydb: reading %s: %w", path, err)
	}

	var fx fixture
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("citydb: parsing %s: %w", path, err)
	}

	return newFromFixture(fx), nil
}

func newFromFixture(fx fixture) *Database {
	db := &Database{
		nodesByOSM:      make(map[int64]nodeEntry, len(fx.Nodes)),
		nodesByInternal: make(map[int64]nodeEntry, len(fx.Nodes)),
		wayNames:        make(map[int64]string, len(fx.Ways)),
	}
	for _, n := range fx.Nodes {
		db.nodesByOSM[n.OSMID] = n
		db.nodesByInternal[n.NodeID] = n
	}
	for _, w := range fx.Ways {
		db.wayNames[w.WayID] = w.Name
	}

	return db
}

// InternalByOSM maps an OpenStreetMap node ID to the internal graph
// node ID used by graph.Graph/engine.Engine.
func (db *Database) InternalByOSM(osmID int64) (int64, error) {
	e, ok := db.nodesByOSM[osmID]
	if !ok {
		return 0, ErrNotFound
	}

	return e.NodeID, nil
}

// OSMByInternal maps an internal graph node ID back to its
// OpenStreetMap ID.
func (db *Database) OSMByInternal(nodeID int64) (int64, error) {
	e, ok := db.nodesByInternal[nodeID]
	if !ok {
		return 0, ErrNotFound
	}

	return e.OSMID, nil
}

// NodeName returns the display name for a node, keyed by its
// OpenStreetMap ID.
func (db *Database) NodeName(osmID int64) (string, error) {
	e, ok := db.nodesByOSM[osmID]
	if !ok {
		return "", ErrNotFound
	}

	return e.Name, nil
}

// WayName returns the display name for a way, keyed by its way ID
// (the grouping attribute carried on graph.Edge).
func (db *Database) WayName(wayID int64) (string, error) {
	name, ok := db.wayNames[wayID]
	if !ok {
		return "", ErrNotFound
	}

	return name, nil
}
