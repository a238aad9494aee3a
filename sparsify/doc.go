// Package sparsify implements Benczúr–Karger edge sampling (spec.md §4.6):
// an O(n log n / ε²)-edge sparsifier that preserves every cut within
// (1±ε), built on the Nagamochi–Ibaraki CAPFOREST edge-strength
// decomposition (package fheap is the hot spot underneath it).
//
// Two public entry points mirror spec.md's unit/weighted distinction:
//
//	Sparsify(g, eps, opts)         — unit-weight strength estimation
//	WeightedSparsify(g, eps, opts) — window_estimation, tuned for wide
//	                                  capacity spread via MST-bottleneck
//	                                  bucketing
//
// Internally both reduce to the same edge-sampling step (sample) over a
// per-edge strength estimate: keep edge e with probability
// p_e = min(1, C_comp · w_e / k_e), C_comp = 3(d+4)log(n)/ε², rescaling a
// kept edge's capacity to w_e/p_e.
package sparsify
