// File: methods_edges.go
// Role: Edge lifecycle and queries — AddEdge, EdgeAt, Edges, UndirectedView, Degree.
// Determinism:
//   - Edges() and EdgeAt(i) reflect insertion order, never re-sorted.
//   - UndirectedView() is the same edge slice viewed direction-agnostically:
//     parallel/anti-parallel edges are left as-is, since every caller that
//     needs them (e.g. treeapprox's MST search) is direction-indifferent and
//     naturally ignores redundant connectivity via union-find.
package core

import "math"

// AddEdge appends a directed edge from→to with the given capacity and
// returns its edge index (its position in the fixed iteration order).
//
// Per the ingest invariant in spec.md §3, a capacity of exactly 0 is not an
// edge at all: AddEdge silently declines (returns -1, nil) rather than
// erroring. Negative, NaN, or infinite capacities are rejected with a
// *CapacityError.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, capacity float64) (int, error) {
	if from < 0 || from >= g.n || to < 0 || to >= g.n {
		return -1, ErrNodeOutOfRange
	}
	if capacity == 0 {
		return -1, nil
	}
	if capacity < 0 || math.IsNaN(capacity) || math.IsInf(capacity, 0) {
		return -1, &CapacityError{From: from, To: to, Capacity: capacity}
	}

	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	idx := len(g.edges)
	g.edges = append(g.edges, Edge{From: from, To: to, Capacity: capacity})
	g.out[from] = append(g.out[from], idx)
	g.in[to] = append(g.in[to], idx)

	return idx, nil
}

// EdgeAt returns the edge at position i in the fixed iteration order.
func (g *Graph) EdgeAt(i int) (Edge, error) {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	if i < 0 || i >= len(g.edges) {
		return Edge{}, ErrEdgeOutOfRange
	}

	return g.edges[i], nil
}

// Edges returns a copy of the edge slice in fixed iteration order.
// Complexity: O(m).
func (g *Graph) Edges() []Edge {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// UndirectedView returns the graph's edges as an undirected multiset: the
// same (From, To, Capacity) triples, to be consumed by algorithms (MST
// search, connected-component discovery) that only care about connectivity
// and capacity, not orientation. Spec.md §3: "An undirected view is derivable."
func (g *Graph) UndirectedView() []Edge {
	return g.Edges()
}

// Degree returns the weighted degree of node v: the sum of capacities of
// every edge touching v, in either direction. This is the denominator used
// by the conductance congestion approximator (spec.md §4.3).
func (g *Graph) Degree(v int) float64 {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	var d float64
	for _, ei := range g.out[v] {
		d += g.edges[ei].Capacity
	}
	for _, ei := range g.in[v] {
		d += g.edges[ei].Capacity
	}

	return d
}

// OutEdges returns the indices of edges leaving v, in insertion order.
func (g *Graph) OutEdges(v int) []int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	out := make([]int, len(g.out[v]))
	copy(out, g.out[v])

	return out
}

// InEdges returns the indices of edges entering v, in insertion order.
func (g *Graph) InEdges(v int) []int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	out := make([]int, len(g.in[v]))
	copy(out, g.in[v])

	return out
}

// Validate scans the graph and reports the first invariant violation found:
// every edge must have From/To within range and a strictly positive, finite
// capacity. AddEdge already enforces this at ingest and is the only way
// edges enter a Graph, so for a Graph built through AddEdge Validate
// returns nil.
func (g *Graph) Validate() error {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	for _, e := range g.edges {
		if e.From < 0 || e.From >= g.n || e.To < 0 || e.To >= g.n {
			return ErrNodeOutOfRange
		}
		if e.Capacity <= 0 || math.IsNaN(e.Capacity) || math.IsInf(e.Capacity, 0) {
			return &CapacityError{From: e.From, To: e.To, Capacity: e.Capacity}
		}
	}

	return nil
}
