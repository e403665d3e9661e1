package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cobweb/graph"
)

// loadGraphData reads a frozen graph from a YAML fixture. OSM file
// parsing and the ingestion pipeline proper are out of scope for the
// routing core (spec.md §1 Non-goals): this loader is the minimal
// stand-in collaborator that hands the core a populated graph, the
// same role spec.md's "Parsing" collaborator interface describes.
func loadGraphData(path string) (*graph.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var fx struct {
		Nodes []struct {
			ID  int64   `yaml:"id"`
			Lat float32 `yaml:"lat"`
			Lon float32 `yaml:"lon"`
		} `yaml:"nodes"`
		Edges []struct {
			From  int64   `yaml:"from"`
			To    int64   `yaml:"to"`
			Cost  float64 `yaml:"cost"`
			WayID int64   `yaml:"way_id"`
		} `yaml:"edges"`
	}
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	g := graph.New()
	for _, n := range fx.Nodes {
		g.AddNode(graph.Node{ID: n.ID, Lat: n.Lat, Lon: n.Lon})
	}
	for _, e := range fx.Edges {
		if err := g.AddEdge(graph.Edge{From: e.From, To: e.To, Cost: e.Cost, WayID: e.WayID}); err != nil {
			return nil, fmt.Errorf("adding edge %d->%d: %w", e.From, e.To, err)
		}
	}

	return g, nil
}
