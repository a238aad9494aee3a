package sparsify

import "github.com/katalvlaran/shermanflow/fheap"

// nagamochiCapforest is the Nagamochi–Ibaraki CAPFOREST scan (spec.md §4.6):
// maintain r[v], the total weight scanned into v so far, in a max-priority
// fheap keyed on r; repeatedly extract the node x of largest r and scan its
// unscanned incident edges (x,y), assigning each edge the "level"
// q = r[y] + weight BEFORE updating r[y] += weight and decrease-keying y.
// The resulting q is a certificate level: the edge belongs to every
// k-certificate with k >= q.
//
// fheap.Heap is a min-heap, so r is negated going in and negated back out —
// the same trick treeapprox.BuildMST avoids needing by sorting descending
// directly; here the heap's decrease-key makes negation the simpler choice.
func nagamochiCapforest(g wgraph) []float64 {
	r := make([]float64, g.n)
	h := fheap.New[int](func(a, b int) bool { return a < b })
	handles := make([]fheap.Handle, g.n)
	for v := 0; v < g.n; v++ {
		handles[v] = h.Insert(0, v)
	}

	adj := buildAdjacency(g)
	scanned := make([]bool, len(g.edges))
	q := make([]float64, len(g.edges))

	for h.Len() > 0 {
		x, _, err := h.ExtractMin()
		if err != nil {
			break
		}
		for _, ei := range adj[x] {
			if scanned[ei] {
				continue
			}
			e := g.edges[ei]
			y := e.u
			if y == x {
				y = e.v
			}
			scanned[ei] = true
			q[ei] = r[y] + e.weight
			r[y] += e.weight
			_ = h.DecreaseKey(handles[y], -r[y])
		}
	}

	return q
}

// nagamochiForest is the unit-weight variant used by the plain (non-window)
// Sparsify path: every edge has weight 1, and ties are broken by the extra
// "r[x]==r[y] => r[x]++" rule spec.md calls out as specific to the
// forest-partition variant, which the pure CAPFOREST scan above does not
// need since real-valued weights essentially never tie.
func nagamochiForest(g wgraph) []int {
	r := make([]int, g.n)
	h := fheap.New[int](func(a, b int) bool { return a < b })
	handles := make([]fheap.Handle, g.n)
	for v := 0; v < g.n; v++ {
		handles[v] = h.Insert(0, v)
	}

	adj := buildAdjacency(g)
	scanned := make([]bool, len(g.edges))
	p := make([]int, len(g.edges))

	for h.Len() > 0 {
		x, _, err := h.ExtractMin()
		if err != nil {
			break
		}
		for _, ei := range adj[x] {
			if scanned[ei] {
				continue
			}
			e := g.edges[ei]
			y := e.u
			if y == x {
				y = e.v
			}
			scanned[ei] = true
			p[ei] = r[y] + 1
			if r[x] == r[y] {
				r[x]++
			}
			r[y]++
			_ = h.DecreaseKey(handles[y], float64(-r[y]))
		}
	}

	return p
}
