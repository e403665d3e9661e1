// Package config loads the server's YAML configuration file, the same
// yaml.v3-backed loader shape used elsewhere in the pack for service
// configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Policy mirrors routefactory.Policy as a YAML-friendly string so the
// config file need not know about engine/routefactory internals.
type Policy string

const (
	PolicyDijkstra       Policy = "dijkstra"
	PolicyAStarHaversine Policy = "astar_haversine"
	PolicyAStarLandmarks Policy = "astar_landmarks"
)

// Config is the server's full runtime configuration.
type Config struct {
	// ListenAddr is the address net/http.Server listens on, e.g. ":8080".
	ListenAddr string `yaml:"listen_addr"`

	// GraphPath points at the OSM-derived graph data to load at startup.
	GraphPath string `yaml:"graph_path"`

	// CityDBPath points at the citydb YAML fixture.
	CityDBPath string `yaml:"citydb_path"`

	// Policy selects the routing strategy (see routefactory.Policy).
	Policy Policy `yaml:"policy"`

	// LandmarkCount is the number of ALT landmarks to select when Policy
	// is astar_landmarks. Ignored otherwise.
	LandmarkCount int `yaml:"landmark_count"`

	// LandmarkSeed seeds the greedy-farthest landmark selection for a
	// reproducible landmark set across restarts.
	LandmarkSeed int64 `yaml:"landmark_seed"`
}

// defaults returns a Config with sane fallback values, overridden by
// whatever the YAML file specifies.
func defaults() Config {
	return Config{
		ListenAddr:    ":8080",
		Policy:        PolicyDijkstra,
		LandmarkCount: 16,
		LandmarkSeed:  1,
	}
}

// Load reads and parses a YAML config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &cfg, nil
}
