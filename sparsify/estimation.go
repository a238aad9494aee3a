package sparsify

import "math"

// estimation computes a per-original-edge strength lower bound via
// geometric doubling (spec.md §4.6): find the k-weak edges, record their
// strength as k, remove them, and recurse with 2k on every remaining
// non-trivial connected component. Terminates because each round strictly
// shrinks the edge set and k doubles, bounding recursion depth by
// O(log(max edge weight)) — shallow enough that converting to an explicit
// stack (as treeapprox's DFS does for a potentially-deep tree walk) buys
// nothing here.
func estimation(g wgraph, k float64) map[int]float64 {
	strength := make(map[int]float64)
	if len(g.edges) == 0 {
		return strength
	}

	weak := weakEdges(g, k)
	for orig := range weak {
		strength[orig] = k
	}

	remainder := removeEdgesByOrig(g, weak)
	for _, comp := range connectedComponents(remainder) {
		for orig, s := range estimation(comp, 2*k) {
			strength[orig] = s
		}
	}

	return strength
}

// unitCertificate is weightedCertificate's combinatorial counterpart: it
// drives the Nagamochi–Ibaraki scan through nagamochiForest — the
// unit-weight variant with its own tie-break rule (spec.md §4.6) — rather
// than treating every edge's weight as the float64 literal 1 through the
// general nagamochiCapforest scan. Used by Sparsify's unweighted strength
// path; WeightedSparsify uses the real-capacity windowEstimation path
// instead.
func unitCertificate(g wgraph, k int) []int {
	if len(g.edges) == 0 {
		return nil
	}
	levels := nagamochiForest(g)

	cert := make([]int, 0, len(levels))
	for i, lvl := range levels {
		if lvl <= k {
			cert = append(cert, i)
		}
	}

	return cert
}

// unitWeakEdges is weakEdges' combinatorial counterpart, built on
// unitPartition instead of partition.
func unitWeakEdges(g wgraph, k int) map[int]bool {
	rounds := int(math.Ceil(math.Log2(math.Max(float64(g.n), 2))))
	working := g
	weak := make(map[int]bool)

	for r := 0; r < rounds; r++ {
		if len(working.edges) == 0 {
			break
		}
		cert := unitPartition(working, 2*k)
		certOrig := make(map[int]bool, len(cert.edges))
		for _, e := range cert.edges {
			weak[e.orig] = true
			certOrig[e.orig] = true
		}
		working = removeEdgesByOrig(working, certOrig)
	}

	return weak
}

// unitEstimation is estimation's combinatorial counterpart: identical
// doubling recursion, but every edge is treated as unit weight regardless
// of its real capacity. This is what Sparsify (the plain, non-windowed
// entry point) uses to assign strengths; the sampling step downstream
// still uses each edge's real capacity to compute its keep probability.
func unitEstimation(g wgraph, k int) map[int]float64 {
	strength := make(map[int]float64)
	if len(g.edges) == 0 {
		return strength
	}

	weak := unitWeakEdges(g, k)
	for orig := range weak {
		strength[orig] = float64(k)
	}

	remainder := removeEdgesByOrig(g, weak)
	for _, comp := range connectedComponents(remainder) {
		for orig, s := range unitEstimation(comp, 2*k) {
			strength[orig] = s
		}
	}

	return strength
}
