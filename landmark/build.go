package landmark

import (
	"context"
	"errors"
	"math/rand"

	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/cobweb/engine"
	"github.com/katalvlaran/cobweb/graph"
)

// ErrEmptyGraph indicates Build was called on a graph with no nodes.
var ErrEmptyGraph = errors.New("landmark: graph has no nodes")

// Build selects k landmarks by greedy-farthest selection and precomputes
// their forward/backward one-to-all distance rows.
//
// Selection: the first landmark is picked uniformly at random from the
// node set (via randSource, so callers get a reproducible run for a
// fixed seed); each subsequent landmark is the node with the greatest
// shortest-path cost from the nearest landmark already chosen (a single
// multi-source Dijkstra per round), ties broken by the lower node ID
// for determinism. k is clamped to the node count.
func Build(ctx context.Context, g *graph.Graph, k int, randSource *rand.Rand) (*Table, error) {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return nil, ErrEmptyGraph
	}
	if k > len(nodes) {
		k = len(nodes)
	}
	if k < 1 {
		k = 1
	}

	eng, err := engine.New(g)
	if err != nil {
		return nil, err
	}

	landmarks := []int64{nodes[randSource.Intn(len(nodes))]}

	for len(landmarks) < k {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		costs, err := eng.ComputeShortestPathCostsReachable(landmarks)
		if err != nil {
			return nil, err
		}

		next, ok := farthest(nodes, costs, landmarks)
		if !ok {
			break // every remaining node unreachable from the current set
		}
		landmarks = append(landmarks, next)

		log.Debug().
			Int("selected", len(landmarks)).
			Int("target", k).
			Int64("node", next).
			Msg("landmark selected")
	}

	reverse := g.Reverse()

	table := &Table{
		landmarks: landmarks,
		forward:   make([]map[int64]float64, len(landmarks)),
		backward:  make([]map[int64]float64, len(landmarks)),
	}

	fwdEngine, err := engine.New(g)
	if err != nil {
		return nil, err
	}
	bwdEngine, err := engine.New(reverse)
	if err != nil {
		return nil, err
	}

	for i, l := range landmarks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fwd, err := fwdEngine.ComputeShortestPathCostsReachable([]int64{l})
		if err != nil {
			return nil, err
		}
		bwd, err := bwdEngine.ComputeShortestPathCostsReachable([]int64{l})
		if err != nil {
			return nil, err
		}

		table.forward[i] = fwd
		table.backward[i] = bwd

		log.Debug().Int64("landmark", l).Int("reachable", len(fwd)).Msg("landmark table row populated")
	}

	return table, nil
}

// farthest returns the node with the greatest cost in costs, excluding
// nodes already in selected, ties broken by the lower node ID (an equal
// cost replaces the current best only when its node ID is lower, so the
// result does not depend on the order of nodes).
func farthest(nodes []int64, costs map[int64]float64, selected []int64) (int64, bool) {
	already := make(map[int64]bool, len(selected))
	for _, s := range selected {
		already[s] = true
	}

	var (
		best    int64
		bestVal float64
		found   bool
	)
	for _, n := range nodes {
		if already[n] {
			continue
		}
		v, ok := costs[n]
		if !ok {
			continue
		}
		if !found || v > bestVal || (v == bestVal && n < best) {
			best, bestVal, found = n, v, true
		}
	}

	return best, found
}
