// Package congestion defines the CongestionApprox capability set (spec.md
// §4.2) — a linear operator pair (R, Rᵀ) plus its bound α — and the
// Conductance approximator, the diagonal R = diag(1/deg(v)).
//
// CongestionApprox is modeled as an interface with two concrete variants in
// this module: Conductance here, and treeapprox.TreeApprox. No runtime
// type-switching on the variant is required or performed (spec.md §9).
package congestion
