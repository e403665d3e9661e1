// Package landmark builds and queries ALT (A*, Landmarks, Triangle
// inequality) precomputed distance tables: for each selected landmark
// node L, the one-to-all shortest-path cost from L to every reachable
// node ("forward") and from every node to L ("backward", computed as a
// forward sweep over the reversed graph). Table.Estimate combines these
// via the triangle inequality into an admissible, monotone heuristic
// for directed graphs, generalizing the undirected landmark heuristic
// described informally in spec.md §4.5.
package landmark

// Table holds the precomputed per-landmark distance rows used to
// answer ALT estimates in O(k) per query, where k is the landmark
// count.
type Table struct {
	landmarks []int64
	forward   []map[int64]float64 // forward[i][v]  = dist(landmarks[i] -> v)
	backward  []map[int64]float64 // backward[i][v] = dist(v -> landmarks[i])
}

// Landmarks returns the landmark node IDs, in selection order.
func (t *Table) Landmarks() []int64 {
	out := make([]int64, len(t.landmarks))
	copy(out, t.landmarks)

	return out
}

// Estimate returns an admissible lower bound on the shortest-path cost
// from a to b using the triangle inequality over every landmark:
//
//	d(a,b) >= d(L,b) - d(L,a)   (forward rows)
//	d(a,b) >= d(a,L) - d(b,L)   (backward rows)
//
// and the combined estimate is the maximum of every landmark's bound
// (each individually admissible, so their maximum still is). Returns
// ok=false if no landmark has both a and b within its recorded
// reachability (can happen across disconnected components after SCC
// pruning leaves a pocket no landmark's sweep reached, though pruning
// to the largest component should make this rare).
func (t *Table) Estimate(a, b int64) (float64, bool) {
	var (
		best  float64
		found bool
	)

	for i := range t.landmarks {
		fwd := t.forward[i]
		bwd := t.backward[i]

		if fa, ok := fwd[a]; ok {
			if fb, ok := fwd[b]; ok {
				if v := fb - fa; !found || v > best {
					best, found = v, true
				}
			}
		}
		if ba, ok := bwd[a]; ok {
			if bb, ok := bwd[b]; ok {
				if v := ba - bb; !found || v > best {
					best, found = v, true
				}
			}
		}
	}

	if found && best < 0 {
		best = 0
	}

	return best, found
}
