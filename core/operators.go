// File: operators.go
// Role: The linear operators spec.md §3 defines on top of the fixed node/edge
//       orders: the capacity operator C/C⁻¹ and the signed incidence
//       operator B/Bᵀ. These are the primitives the solver composes; no
//       algorithmic policy lives here.
package core

// Capacities returns the dense, edge-indexed capacity vector c, aligned to
// the fixed edge iteration order. This is the diagonal of C.
func (g *Graph) Capacities() []float64 {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	c := make([]float64, len(g.edges))
	for i, e := range g.edges {
		c[i] = e.Capacity
	}

	return c
}

// ApplyC multiplies an edge-space vector x by the diagonal capacity
// operator C: out[e] = x[e] * c_e.
func (g *Graph) ApplyC(x []float64) ([]float64, error) {
	c := g.Capacities()
	if len(x) != len(c) {
		return nil, ErrDimensionMismatch
	}
	out := make([]float64, len(x))
	for i, xi := range x {
		out[i] = xi * c[i]
	}

	return out, nil
}

// ApplyCInv multiplies an edge-space vector x by C⁻¹: out[e] = x[e] / c_e.
// Capacities are guaranteed strictly positive by AddEdge, so this never
// divides by zero.
func (g *Graph) ApplyCInv(x []float64) ([]float64, error) {
	c := g.Capacities()
	if len(x) != len(c) {
		return nil, ErrDimensionMismatch
	}
	out := make([]float64, len(x))
	for i, xi := range x {
		out[i] = xi / c[i]
	}

	return out, nil
}

// BMultiply applies the signed node-edge incidence operator B to an
// edge-space flow vector f, producing the node-space excess vector:
//
//	(Bf)_v = Σ_{(u→v)} f_e − Σ_{(v→u)} f_e
//
// i.e. inflow minus outflow at each node (spec.md §3).
func (g *Graph) BMultiply(f []float64) ([]float64, error) {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	if len(f) != len(g.edges) {
		return nil, ErrDimensionMismatch
	}

	out := make([]float64, g.n)
	for i, e := range g.edges {
		out[e.To] += f[i]
		out[e.From] -= f[i]
	}

	return out, nil
}

// BTMultiply applies the adjoint Bᵀ to a node-space vector x, producing the
// edge-space vector (Bᵀx)_e = x_{to(e)} − x_{from(e)}.
func (g *Graph) BTMultiply(x []float64) ([]float64, error) {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	if len(x) != g.n {
		return nil, ErrDimensionMismatch
	}

	out := make([]float64, len(g.edges))
	for i, e := range g.edges {
		out[i] = x[e.To] - x[e.From]
	}

	return out, nil
}
