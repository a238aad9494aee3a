// Package core defines the Graph primitive shared by every other package in
// this module: a directed, capacitated graph over a contiguous node index
// set {0,...,n-1}, with edges iterated in a fixed, repeatable order.
//
// Every dense vector the solver touches — flows, demands, potentials — is
// indexed against one of two fixed orders this package owns: node order
// (0..n-1) and edge order (insertion order, exposed by EdgeAt/Edges). No
// other package may reorder either axis.
//
// Graph additionally exposes the linear operators the rest of the module
// treats as primitives: the capacity operator C/C⁻¹ (diagonal scaling by
// per-edge capacity) and the signed incidence operator B/Bᵀ (spec.md §3).
package core
