package tarjan

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cobweb/graph"
)

func normalize(sccs [][]int64) [][]int64 {
	out := make([][]int64, len(sccs))
	for i, s := range sccs {
		c := append([]int64(nil), s...)
		sort.Slice(c, func(i, j int) bool { return c[i] < c[j] })
		out[i] = c
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}

func buildGraph(t *testing.T, nodes []int64, edges [][2]int64) *graph.Graph {
	t.Helper()
	g := graph.New()
	for _, id := range nodes {
		g.AddNode(graph.Node{ID: id})
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(graph.Edge{From: e[0], To: e[1], Cost: 1}))
	}

	return g
}

func TestSCCsScenarioS4(t *testing.T) {
	g := buildGraph(t, []int64{1, 2, 3, 4}, [][2]int64{{1, 2}, {2, 1}, {3, 4}})

	got := normalize(SCCs(g))
	want := [][]int64{{1, 2}, {3}, {4}}
	assert.Equal(t, want, got)
}

func TestSCCsBranchingNodeFoldsAllChildren(t *testing.T) {
	// 1 -> 2, 1 -> 3, 2 -> 4, 3 -> 4, 4 -> 1: all four nodes form one SCC.
	// A buggy "first-child-only" iterative Tarjan would fragment this,
	// since node 1 has out-degree 2.
	g := buildGraph(t, []int64{1, 2, 3, 4}, [][2]int64{
		{1, 2}, {1, 3}, {2, 4}, {3, 4}, {4, 1},
	})

	got := normalize(SCCs(g))
	assert.Equal(t, [][]int64{{1, 2, 3, 4}}, got)
}

func TestSCCsEveryNodeInExactlyOneComponent(t *testing.T) {
	g := buildGraph(t, []int64{1, 2, 3, 4, 5}, [][2]int64{
		{1, 2}, {2, 3}, {3, 1}, {3, 4}, {4, 5},
	})

	sccs := SCCs(g)
	seen := make(map[int64]int)
	for _, scc := range sccs {
		for _, n := range scc {
			seen[n]++
		}
	}
	for _, id := range []int64{1, 2, 3, 4, 5} {
		assert.Equal(t, 1, seen[id], "node %d must appear in exactly one SCC", id)
	}
}

func TestTaskElementLifecycle(t *testing.T) {
	task := newTask(1, 0, false)
	assert.Equal(t, int(stepIndex), task.Step())

	task.Advance()
	assert.Equal(t, int(stepGetSuccessors), task.Step())

	task.Advance()
	assert.Equal(t, int(stepSetLowlink), task.Step())

	task.Advance()
	assert.Equal(t, int(stepDone), task.Step())

	task.Advance()
	assert.Equal(t, int(stepDone), task.Step())
}
