// Package sherman implements the gradient-descent max-flow / min-congestion
// flow framework of spec.md §4.5: a smoothed potential over the node-edge
// incidence operator and a congestion approximator, driven to convergence
// by a Nesterov-accelerated subgradient step, wrapped in a boosting loop
// that drives residual demand down geometrically.
//
// A Solver pairs one *core.Graph with one congestion.CongestionApprox and
// is stateless across calls: AlmostRoute, MinCongestionFlow, MaxFlow, and
// MaxSTFlow each thread their own flow/demand vectors through the loop,
// per spec.md §5's concurrency model.
package sherman
