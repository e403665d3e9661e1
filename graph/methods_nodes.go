package graph

// AddNode inserts n if no node with the same ID is already present.
// Idempotent by identity: re-adding an existing ID is a no-op and never
// replaces the stored Node. Returns whether n was newly inserted.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(n Node) bool {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.nodes[n.ID]; exists {
		return false
	}

	stored := n
	g.nodes[n.ID] = &stored
	g.order = append(g.order, n.ID)

	g.muEdgeAdj.Lock()
	g.outAdj[n.ID] = make(map[handle]struct{})
	g.inAdj[n.ID] = make(map[handle]struct{})
	g.muEdgeAdj.Unlock()

	return true
}

// RemoveNode deletes the node id and every edge incident to it, in either
// direction. Returns whether the node was present.
//
// Complexity: O(degree(id)).
func (g *Graph) RemoveNode(id int64) bool {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.nodes[id]; !exists {
		return false
	}

	g.muEdgeAdj.Lock()
	for h := range g.outAdj[id] {
		e := g.edges[h]
		delete(g.inAdj[e.To], h)
		delete(g.edges, h)
	}
	for h := range g.inAdj[id] {
		e := g.edges[h]
		delete(g.outAdj[e.From], h)
		delete(g.edges, h)
	}
	delete(g.outAdj, id)
	delete(g.inAdj, id)
	g.muEdgeAdj.Unlock()

	delete(g.nodes, id)
	for i, v := range g.order {
		if v == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}

	return true
}

// ContainsNodeID reports whether id is present in the graph.
//
// Complexity: O(1).
func (g *Graph) ContainsNodeID(id int64) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	_, ok := g.nodes[id]

	return ok
}

// NodeByID returns the node with the given id, or (Node{}, false) if absent.
//
// Complexity: O(1).
func (g *Graph) NodeByID(id int64) (Node, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return Node{}, false
	}

	return *n, true
}

// NodeCount returns the number of nodes currently in the graph.
//
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.nodes)
}

// Nodes returns every node ID in deterministic insertion order. The
// returned slice is a fresh copy safe for the caller to retain or mutate.
//
// Complexity: O(V).
func (g *Graph) Nodes() []int64 {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]int64, len(g.order))
	copy(out, g.order)

	return out
}
