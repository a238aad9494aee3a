package congestion

// CongestionApprox is a linear operator R on node-space, producing an
// edge-like vector, paired with a multiplicative bound α such that for
// every demand vector b:
//
//	‖Rb‖∞ ≤ opt(b) ≤ α · ‖Rb‖∞
//
// where opt(b) is the minimum achievable max-edge congestion routing b.
// Implementations must be linear and mutually consistent so that for all
// b, x: (Rb)·x = b·(Rᵀx) within floating-point tolerance (spec.md §4.2) —
// this duality is exercised by each implementation's own tests, not
// enforced structurally by the interface.
type CongestionApprox interface {
	// RMultiply maps a node-space vector to an edge-like vector.
	RMultiply(b []float64) []float64
	// RTMultiply is the adjoint of RMultiply: edge-like vector to node-space.
	RTMultiply(x []float64) []float64
	// Alpha returns the operator's congestion bound.
	Alpha() float64
}
