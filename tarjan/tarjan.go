// Package tarjan implements Tarjan's strongly-connected-components
// algorithm as an iterative, explicit-stack traversal, avoiding the
// recursion-depth risk a recursive strongconnect would carry on a
// continent-sized road graph.
//
// Each node scheduled for processing is represented by a taskElement
// carrying (node, predecessor, step), advancing through three steps —
// index assignment, successor examination, lowlink propagation — in the
// same order a recursive strongconnect(v) would visit them; the
// task deque (used as a LIFO stack) plays the role of the call stack.
//
// Complexity: Time O(V+E), Memory O(V).
package tarjan

import "github.com/katalvlaran/cobweb/graph"

// step is a taskElement's position in its three-step lifecycle.
type step int

const (
	// stepIndex assigns the node's discovery index and lowlink.
	stepIndex step = iota
	// stepGetSuccessors examines the node's outgoing edges.
	stepGetSuccessors
	// stepSetLowlink propagates lowlink to the predecessor and, if the
	// node is a root, pops its SCC off the stack.
	stepSetLowlink
	// stepDone is terminal and sticky: further Advance calls are no-ops.
	stepDone
)

// taskElement is the (node, predecessor-or-none, step) triple scheduled
// during one Tarjan pass. A freshly constructed element starts at
// stepIndex; Advance moves it forward one step at a time, and Advance
// on a done element leaves it at done.
type taskElement struct {
	node    int64
	pred    int64
	hasPred bool
	step    step

	// succIdx tracks how far stepGetSuccessors has scanned this node's
	// outgoing edges across re-entries (a descent into a successor
	// pushes a new task and returns to this one later).
	succIdx int
}

// newTask creates a taskElement at stepIndex for node, with predecessor
// pred (hasPred=false for a root task with no predecessor).
func newTask(node int64, pred int64, hasPred bool) *taskElement {
	return &taskElement{node: node, pred: pred, hasPred: hasPred}
}

// Advance moves t to its next step. Advancing a done task is a no-op.
func (t *taskElement) Advance() {
	if t.step < stepDone {
		t.step++
	}
}

// Step reports t's current step, exposed for tests exercising the
// lifecycle described by the specification (S5).
func (t *taskElement) Step() int { return int(t.step) }

// SCCs returns the strongly connected components of g. Each component is
// a slice of node IDs; components are emitted in the order their roots
// are finalized (Tarjan's natural reverse-topological order). Successor
// iteration uses graph.Graph's deterministic outgoing-edge order, so the
// result is reproducible across runs for a fixed graph.
func SCCs(g *graph.Graph) [][]int64 {
	r := &runner{
		g:        g,
		indexOf:  make(map[int64]int),
		lowlink:  make(map[int64]int),
		onStack:  make(map[int64]bool),
		stack:    make([]int64, 0),
		deque:    make([]*taskElement, 0),
		visited:  make(map[int64]bool),
		index:    1, // reserve 0 as "no index assigned"
	}

	for _, v := range g.Nodes() {
		if r.visited[v] {
			continue
		}
		r.deque = append(r.deque, newTask(v, 0, false))
		r.run()
	}

	return r.sccs
}

// runner holds the mutable state for one Tarjan pass.
type runner struct {
	g *graph.Graph

	index   int
	indexOf map[int64]int
	lowlink map[int64]int
	onStack map[int64]bool
	visited map[int64]bool

	stack []int64
	deque []*taskElement

	sccs [][]int64
}

// run drains the task deque, processing the top task's current step
// until the deque started for this root is empty.
func (r *runner) run() {
	for len(r.deque) > 0 {
		top := r.deque[len(r.deque)-1]

		switch top.step {
		case stepIndex:
			r.doIndex(top)
		case stepGetSuccessors:
			r.doGetSuccessors(top)
		case stepSetLowlink:
			r.doSetLowlink(top)
			r.deque = r.deque[:len(r.deque)-1]
		case stepDone:
			r.deque = r.deque[:len(r.deque)-1]
		}
	}
}

// doIndex assigns v its discovery index/lowlink, pushes it onto the SCC
// stack, and advances to stepGetSuccessors.
func (r *runner) doIndex(t *taskElement) {
	v := t.node
	r.indexOf[v] = r.index
	r.lowlink[v] = r.index
	r.index++
	r.stack = append(r.stack, v)
	r.onStack[v] = true
	r.visited[v] = true

	t.Advance()
}

// doGetSuccessors examines v's outgoing edges in deterministic order
// starting from t.succIdx. When an unvisited successor w is found, a
// fresh task for w is pushed on top and control returns to run() to
// process it first; v's own task stays at stepGetSuccessors (succIdx
// already past w) so that once w's whole subtree finishes and v is
// popped again, the loop resumes with v's remaining successors rather
// than finalizing v early. Already-visited successors still on the
// stack update v's lowlink in place. Only once every successor has been
// examined without a further descent does v advance to stepSetLowlink —
// this is what keeps multi-successor nodes (any real road intersection)
// correctly folding every branch's lowlink before v is finalized.
func (r *runner) doGetSuccessors(t *taskElement) {
	v := t.node
	edges := r.g.OutgoingEdges(v)

	for t.succIdx < len(edges) {
		w := edges[t.succIdx].To
		t.succIdx++

		if _, seen := r.indexOf[w]; !seen {
			r.deque = append(r.deque, newTask(w, v, true))

			return
		}
		if r.onStack[w] {
			if r.indexOf[w] < r.lowlink[v] {
				r.lowlink[v] = r.indexOf[w]
			}
		}
	}

	t.Advance()
}

// doSetLowlink propagates v's lowlink to its predecessor (if any) and,
// if v is a root (lowlink == index), pops v's SCC off the stack.
func (r *runner) doSetLowlink(t *taskElement) {
	v := t.node

	if t.hasPred {
		if r.lowlink[v] < r.lowlink[t.pred] {
			r.lowlink[t.pred] = r.lowlink[v]
		}
	}

	if r.lowlink[v] != r.indexOf[v] {
		return
	}

	var scc []int64
	for {
		n := r.stack[len(r.stack)-1]
		r.stack = r.stack[:len(r.stack)-1]
		r.onStack[n] = false
		scc = append(scc, n)
		if n == v {
			break
		}
	}
	r.sccs = append(r.sccs, scc)
}
