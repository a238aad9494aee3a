// File: tree.go
// Role: construction (New) and the R/Rᵀ operators (route_flow / accumulate).
package treeapprox

import "github.com/katalvlaran/shermanflow/core"

// New builds a TreeApprox rooted at root: first BuildMST(g), then an
// iterative (explicit-stack) DFS from root that records each tree edge the
// first time its child is discovered, visiting each node's neighbors in
// ascending node-index order for a deterministic, reproducible DFS order
// (spec.md §9: "convert to explicit stacks" for large n).
//
// Alpha is set to g.NumEdges() — the number of edges in the *original*
// graph, not the tree — a coarse stretch bound rather than the tight
// tree-stretch α. Spec.md's open question flags this as a likely
// under-estimate of the true bound; DESIGN.md records the decision to keep
// it as specified rather than substitute a tighter (but unspecified) bound.
func New(g *core.Graph, root int) (*TreeApprox, error) {
	n := g.NumNodes()
	if root < 0 || root >= n {
		return nil, ErrInvalidRoot
	}

	mstEdges, err := BuildMST(g)
	if err != nil {
		return nil, err
	}

	adj := make(map[int][]core.Edge, n)
	for _, e := range mstEdges {
		adj[e.From] = append(adj[e.From], e)
		adj[e.To] = append(adj[e.To], core.Edge{From: e.To, To: e.From, Capacity: e.Capacity})
	}
	for v := range adj {
		list := adj[v]
		for i := 1; i < len(list); i++ {
			for j := i; j > 0 && list[j-1].To > list[j].To; j-- {
				list[j-1], list[j] = list[j], list[j-1]
			}
		}
	}

	dfsOrder := make([]treeEdge, 0, n-1)
	visited := make([]bool, n)
	visited[root] = true
	stack := []int{root}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		neighbors := adj[u]
		for i := len(neighbors) - 1; i >= 0; i-- {
			e := neighbors[i]
			if visited[e.To] {
				continue
			}
			visited[e.To] = true
			dfsOrder = append(dfsOrder, treeEdge{parent: u, child: e.To, capacity: e.Capacity})
			stack = append(stack, e.To)
		}
	}
	if len(dfsOrder) != n-1 {
		return nil, ErrDisconnected
	}

	return &TreeApprox{
		root:     root,
		numNodes: n,
		dfsOrder: dfsOrder,
		alpha:    float64(g.NumEdges()),
	}, nil
}

// RMultiply implements route_flow(b) (spec.md §4.4): treat b as node
// excess, push each child's accumulated excess up to its parent in reverse
// DFS order, then emit flow(p,c)/c_(p,c)/α for each tree edge in forward
// DFS order.
func (t *TreeApprox) RMultiply(b []float64) []float64 {
	excess := make([]float64, len(b))
	copy(excess, b)

	flow := make([]float64, len(t.dfsOrder))
	for i := len(t.dfsOrder) - 1; i >= 0; i-- {
		e := t.dfsOrder[i]
		flow[i] = excess[e.child]
		excess[e.parent] += excess[e.child]
	}

	out := make([]float64, len(t.dfsOrder))
	for i, e := range t.dfsOrder {
		out[i] = flow[i] / e.capacity / t.alpha
	}

	return out
}

// RTMultiply implements the adjoint: interpret x componentwise as edge
// potentials, accumulate x_e/c_e along the tree from the root (root
// potential 0), and emit the per-node potentials divided by α.
func (t *TreeApprox) RTMultiply(x []float64) []float64 {
	pot := make([]float64, t.numNodes)
	for i, e := range t.dfsOrder {
		pot[e.child] = pot[e.parent] + x[i]/e.capacity
	}
	for v := range pot {
		pot[v] /= t.alpha
	}

	return pot
}

// Alpha returns the bound fixed at construction.
func (t *TreeApprox) Alpha() float64 { return t.alpha }
