// Package cut implements residual-graph cut extraction (spec.md §4.8):
// given a flow f on a graph g and a source s, build the residual graph
// (an edge (u,v) survives iff its residual capacity exceeds a threshold),
// find the set S reachable from s, and report every original edge with
// exactly one endpoint in S.
//
// ExactMinCut uses threshold 0; ApproxMinCut takes a caller-supplied
// positive threshold, matching spec.md's "Exact variant uses ε = 0."
package cut
