package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cobweb/graph"
)

// buildLinear builds 1 -(1)-> 2 -(1)-> 3 -(1)-> 4.
func buildLinear(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	for _, id := range []int64{1, 2, 3, 4} {
		g.AddNode(graph.Node{ID: id})
	}
	require.NoError(t, g.AddEdge(graph.Edge{From: 1, To: 2, Cost: 1}))
	require.NoError(t, g.AddEdge(graph.Edge{From: 2, To: 3, Cost: 1}))
	require.NoError(t, g.AddEdge(graph.Edge{From: 3, To: 4, Cost: 1}))

	return g
}

func TestComputeShortestPathLinear(t *testing.T) {
	g := buildLinear(t)
	eng, err := New(g)
	require.NoError(t, err)

	p, err := eng.ComputeShortestPath([]int64{1}, 4)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 3, p.Length())
	assert.Equal(t, 3.0, p.TotalCost())
	assert.Equal(t, int64(1), p.Source())
	assert.Equal(t, int64(4), p.Destination())
}

func TestComputeShortestPathSameNodeEmptyPath(t *testing.T) {
	g := buildLinear(t)
	eng, err := New(g)
	require.NoError(t, err)

	p, err := eng.ComputeShortestPath([]int64{2}, 2)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 0, p.Length())
	assert.Equal(t, 0.0, p.TotalCost())
	assert.Equal(t, int64(2), p.Source())
	assert.Equal(t, int64(2), p.Destination())
}

func TestComputeShortestPathUnreachableReturnsNilNil(t *testing.T) {
	g := graph.New()
	g.AddNode(graph.Node{ID: 1})
	g.AddNode(graph.Node{ID: 2})
	eng, err := New(g)
	require.NoError(t, err)

	p, err := eng.ComputeShortestPath([]int64{1}, 2)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestComputeShortestPathNoSourcesErrors(t *testing.T) {
	g := buildLinear(t)
	eng, err := New(g)
	require.NoError(t, err)

	_, err = eng.ComputeShortestPath(nil, 1)
	assert.ErrorIs(t, err, ErrNoSources)
}

func TestComputeShortestPathMultiSourcePicksCheapest(t *testing.T) {
	g := graph.New()
	for _, id := range []int64{1, 2, 3} {
		g.AddNode(graph.Node{ID: id})
	}
	require.NoError(t, g.AddEdge(graph.Edge{From: 1, To: 3, Cost: 10}))
	require.NoError(t, g.AddEdge(graph.Edge{From: 2, To: 3, Cost: 1}))
	eng, err := New(g)
	require.NoError(t, err)

	p, err := eng.ComputeShortestPath([]int64{1, 2}, 3)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 1.0, p.TotalCost())
	assert.Equal(t, int64(2), p.Source())
}

func TestComputeShortestPathCostsReachable(t *testing.T) {
	g := buildLinear(t)
	eng, err := New(g)
	require.NoError(t, err)

	costs, err := eng.ComputeShortestPathCostsReachable([]int64{1})
	require.NoError(t, err)
	assert.Equal(t, map[int64]float64{1: 0, 2: 1, 3: 2, 4: 3}, costs)
}

// fixedRejectFilter rejects every edge on a named way, exercising the
// edgeFilter capability via a minimal test module.
type fixedRejectFilter struct {
	BaseModule
	rejectWay int64
}

func (f fixedRejectFilter) ConsiderEdge(e graph.Edge, baseCost float64) (float64, bool) {
	if e.WayID == f.rejectWay {
		return 0, false
	}

	return baseCost, true
}

func TestComputeShortestPathHonorsEdgeFilter(t *testing.T) {
	g := graph.New()
	for _, id := range []int64{1, 2, 3} {
		g.AddNode(graph.Node{ID: id})
	}
	require.NoError(t, g.AddEdge(graph.Edge{From: 1, To: 2, Cost: 1, WayID: 99}))
	require.NoError(t, g.AddEdge(graph.Edge{From: 2, To: 3, Cost: 1, WayID: 99}))

	eng, err := New(g, fixedRejectFilter{rejectWay: 99})
	require.NoError(t, err)

	p, err := eng.ComputeShortestPath([]int64{1}, 3)
	require.NoError(t, err)
	assert.Nil(t, p)
}

// distHeuristic is a trivial admissible estimator for test purposes:
// it always returns a fixed, deliberately small estimate so A* visits
// the same nodes as plain Dijkstra but exercises combineEstimates.
type distHeuristic struct {
	BaseModule
	value float64
}

func (d distHeuristic) Estimate(node, destination int64) (float64, bool) {
	return d.value, true
}

func TestComputeShortestPathWithHeuristicStillFindsOptimal(t *testing.T) {
	g := buildLinear(t)
	eng, err := New(g, distHeuristic{value: 0.5})
	require.NoError(t, err)

	p, err := eng.ComputeShortestPath([]int64{1}, 4)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 3.0, p.TotalCost())
}

func TestModeFilterAcceptsEverythingWhenNoModesRequested(t *testing.T) {
	g := buildLinear(t)
	eng, err := New(g, NewModeFilter())
	require.NoError(t, err)

	p, err := eng.ComputeShortestPath([]int64{1}, 4)
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestModeFilterAcceptsRequestedCarMode(t *testing.T) {
	g := buildLinear(t)
	eng, err := New(g, NewModeFilter(ModeCar))
	require.NoError(t, err)

	p, err := eng.ComputeShortestPath([]int64{1}, 4)
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestModeFilterRejectsEveryEdgeWhenCarNotRequested(t *testing.T) {
	g := buildLinear(t)
	eng, err := New(g, NewModeFilter(99))
	require.NoError(t, err)

	p, err := eng.ComputeShortestPath([]int64{1}, 4)
	require.NoError(t, err)
	assert.Nil(t, p)
}
