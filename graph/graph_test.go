package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddNodeIdempotent(t *testing.T) {
	g := New()

	assert.True(t, g.AddNode(Node{ID: 1, Lat: 10, Lon: 20}))
	assert.False(t, g.AddNode(Node{ID: 1, Lat: 99, Lon: 99}))

	n, ok := g.NodeByID(1)
	require.True(t, ok)
	assert.Equal(t, float32(10), n.Lat)
}

func TestAddEdgeRequiresEndpoints(t *testing.T) {
	g := New()
	g.AddNode(Node{ID: 1})

	err := g.AddEdge(Edge{From: 1, To: 2, Cost: 5})
	assert.ErrorIs(t, err, ErrDanglingEdge)

	g.AddNode(Node{ID: 2})
	err = g.AddEdge(Edge{From: 1, To: 2, Cost: -1})
	assert.ErrorIs(t, err, ErrNegativeCost)

	err = g.AddEdge(Edge{From: 1, To: 2, Cost: 5, WayID: 7})
	require.NoError(t, err)
	assert.Len(t, g.OutgoingEdges(1), 1)
	assert.Len(t, g.IncomingEdges(2), 1)
}

func TestRemoveNodeRemovesIncidentEdges(t *testing.T) {
	g := New()
	g.AddNode(Node{ID: 1})
	g.AddNode(Node{ID: 2})
	g.AddNode(Node{ID: 3})
	require.NoError(t, g.AddEdge(Edge{From: 1, To: 2, Cost: 1}))
	require.NoError(t, g.AddEdge(Edge{From: 2, To: 3, Cost: 1}))

	assert.True(t, g.RemoveNode(2))
	assert.False(t, g.ContainsNodeID(2))
	assert.Empty(t, g.OutgoingEdges(1))
	assert.Empty(t, g.IncomingEdges(3))
	assert.False(t, g.RemoveNode(2))
}

func TestNodesDeterministicOrder(t *testing.T) {
	g := New()
	for _, id := range []int64{5, 1, 3} {
		g.AddNode(Node{ID: id})
	}

	assert.Equal(t, []int64{5, 1, 3}, g.Nodes())
}

func TestReverseFlipsEdges(t *testing.T) {
	g := New()
	g.AddNode(Node{ID: 1})
	g.AddNode(Node{ID: 2})
	require.NoError(t, g.AddEdge(Edge{From: 1, To: 2, Cost: 3, WayID: 9}))

	r := g.Reverse()
	assert.Empty(t, r.OutgoingEdges(1))
	require.Len(t, r.OutgoingEdges(2), 1)
	assert.Equal(t, Edge{From: 2, To: 1, Cost: 3, WayID: 9}, r.OutgoingEdges(2)[0])
}

func TestLargestSCCInduces(t *testing.T) {
	g := New()
	for _, id := range []int64{1, 2, 3, 4} {
		g.AddNode(Node{ID: id})
	}
	require.NoError(t, g.AddEdge(Edge{From: 1, To: 2, Cost: 1}))
	require.NoError(t, g.AddEdge(Edge{From: 2, To: 1, Cost: 1}))
	require.NoError(t, g.AddEdge(Edge{From: 3, To: 4, Cost: 1}))

	out := LargestSCC(g, [][]int64{{1, 2}, {3}, {4}})
	assert.ElementsMatch(t, []int64{1, 2}, out.Nodes())
	assert.Len(t, out.OutgoingEdges(1), 1)
}

func TestHaversineMetersZeroForSamePoint(t *testing.T) {
	assert.Equal(t, 0.0, HaversineMeters(50, 30, 50, 30))
	assert.Greater(t, HaversineMeters(50, 30, 51, 30), 0.0)
}
