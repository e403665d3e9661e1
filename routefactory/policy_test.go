package routefactory

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cobweb/graph"
	"github.com/katalvlaran/cobweb/landmark"
)

func buildGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	g.AddNode(graph.Node{ID: 1, Lat: 0, Lon: 0})
	g.AddNode(graph.Node{ID: 2, Lat: 0.01, Lon: 0.01})
	require.NoError(t, g.AddEdge(graph.Edge{From: 1, To: 2, Cost: 1}))

	return g
}

func TestNewPolicyDijkstra(t *testing.T) {
	g := buildGraph(t)
	eng, err := New(g, PolicyDijkstra)
	require.NoError(t, err)
	p, err := eng.ComputeShortestPath([]int64{1}, 2)
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestNewPolicyAStarHaversine(t *testing.T) {
	g := buildGraph(t)
	eng, err := New(g, PolicyAStarHaversine)
	require.NoError(t, err)
	p, err := eng.ComputeShortestPath([]int64{1}, 2)
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestNewPolicyAStarLandmarksRequiresTable(t *testing.T) {
	g := buildGraph(t)
	_, err := New(g, PolicyAStarLandmarks)
	assert.ErrorIs(t, err, ErrLandmarkTableRequired)
}

func TestNewWithModesRejectsUnrequestedMode(t *testing.T) {
	g := buildGraph(t)
	eng, err := New(g, PolicyDijkstra, WithModes(99))
	require.NoError(t, err)

	p, err := eng.ComputeShortestPath([]int64{1}, 2)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestNewWithModesAcceptsRequestedCarMode(t *testing.T) {
	g := buildGraph(t)
	eng, err := New(g, PolicyDijkstra, WithModes(0))
	require.NoError(t, err)

	p, err := eng.ComputeShortestPath([]int64{1}, 2)
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestNewPolicyAStarLandmarksWithTable(t *testing.T) {
	g := buildGraph(t)
	table, err := landmark.Build(context.Background(), g, 1, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	eng, err := New(g, PolicyAStarLandmarks, WithLandmarkTable(table))
	require.NoError(t, err)
	p, err := eng.ComputeShortestPath([]int64{1}, 2)
	require.NoError(t, err)
	assert.NotNil(t, p)
}
