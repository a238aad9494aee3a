// Package shermanflow (shermanflow) is an almost-linear-time approximate
// max-flow / min-congestion solver for capacitated graphs in Go.
//
// 🚀 What is shermanflow?
//
//	A modern, dependency-light library built around Sherman's
//	gradient-descent congestion-minimization framework:
//
//	  • Core primitives: build capacitated graphs, query the edge-node
//	    incidence operator B and its transpose, scale by capacities via
//	    C / C⁻¹
//	  • Smoothed-max machinery: numerically stable lmax/softmax and its
//	    gradient, shared by every congestion-approximation scheme
//	  • Congestion approximators: conductance-based and maximum-spanning-tree
//	    schemes behind one CongestionApprox interface
//	  • Sparsification: Benczúr–Karger cut sparsifiers built on
//	    Nagamochi–Ibaraki forest decomposition and a Fibonacci heap
//	  • The solver: AlmostRoute's accelerated potential-reduction step,
//	    MinCongestionFlow's boosting loop, MaxFlow/MaxSTFlow extraction
//	  • Cut extraction: residual-graph reachability and boundary edges
//	    from a computed flow
//
// ✨ Why choose shermanflow?
//
//   - Principled        — every operation traces back to a named step in
//     Sherman's potential-reduction framework, not an ad hoc heuristic
//   - Pluggable         — congestion approximation is an interface; swap
//     conductance for a tree embedding without touching the solver
//   - Observable        — every long-running routine accepts an optional
//     *log.Logger and reports its own progress when one is supplied
//   - Pure Go           — no cgo; the only third-party surfaces are
//     gonum's vector helpers and testify's test tooling
//
// Under the hood, everything is organized under eight subpackages:
//
//	core/       — Graph, Edge types; incidence operators B/Bᵀ, C/C⁻¹
//	softmax/    — smoothed-max (lmax) and its gradient
//	fheap/      — generic Fibonacci heap used by the sparsifier
//	congestion/ — the CongestionApprox interface and the conductance approximator
//	treeapprox/ — maximum-capacity spanning tree construction and routing
//	sparsify/   — Benczúr–Karger cut sparsification
//	sherman/    — the gradient-descent solver: AlmostRoute, MinCongestionFlow, MaxFlow
//	cut/        — residual-graph min-cut extraction from a computed flow
//
// Quick ASCII example, a 4-node diamond:
//
//	    A───B
//	    │   │
//	    C───D
//
//	MaxSTFlow(A, D) routes flow along both A-B-D and A-C-D.
//
// Dive into SPEC_FULL.md and the per-package doc comments for the full
// algorithmic account of each step.
//
//	go get github.com/katalvlaran/shermanflow/core
package shermanflow
