package sparsify

// wedge is one edge of the internal weighted multigraph sparsify operates
// on while contracting/partitioning. orig indexes back into the original
// graph's fixed edge order (core.Graph.Edges()), surviving contraction so a
// strength estimate computed on a heavily-contracted multigraph can still be
// attributed to the original edge it came from.
type wedge struct {
	u, v   int
	weight float64
	orig   int
}

// wgraph is an undirected weighted multigraph over node ids [0,n); self
// loops are never stored (contraction drops them at the point of creation).
type wgraph struct {
	n     int
	edges []wedge
}

// unionFind is the same iterative, path-compressing disjoint-set structure
// used by treeapprox.BuildMST and the teacher's prim_kruskal.Kruskal; kept
// as a small unexported duplicate here rather than exported from treeapprox,
// since contraction's node space (post-merge component ids) is local to
// this package and has no business living on TreeApprox's public surface.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for v := range uf.parent {
		uf.parent[v] = v
	}

	return uf
}

func (uf *unionFind) find(v int) int {
	for uf.parent[v] != v {
		uf.parent[v] = uf.parent[uf.parent[v]]
		v = uf.parent[v]
	}

	return v
}

func (uf *unionFind) union(u, v int) {
	ru, rv := uf.find(u), uf.find(v)
	if ru == rv {
		return
	}
	if uf.rank[ru] < uf.rank[rv] {
		uf.parent[ru] = rv
	} else {
		uf.parent[rv] = ru
		if uf.rank[ru] == uf.rank[rv] {
			uf.rank[ru]++
		}
	}
}

// buildAdjacency indexes, for every node, the edges incident to it (an edge
// appears twice unless it is a self loop, which wgraph never holds).
func buildAdjacency(g wgraph) [][]int {
	adj := make([][]int, g.n)
	for i, e := range g.edges {
		adj[e.u] = append(adj[e.u], i)
		if e.v != e.u {
			adj[e.v] = append(adj[e.v], i)
		}
	}

	return adj
}

// multigraphContractEdges returns the multigraph on the connected-component
// quotient of (V, E') where E' is the edge set named by contractIdx: nodes
// joined by a contracted edge collapse into one, every edge of g NOT in E'
// is preserved (remapped onto the quotient, parallel edges kept), and any
// edge that becomes a self loop after remapping is discarded.
func multigraphContractEdges(g wgraph, contractIdx []int) wgraph {
	uf := newUnionFind(g.n)
	for _, ei := range contractIdx {
		e := g.edges[ei]
		uf.union(e.u, e.v)
	}

	compID := make(map[int]int, g.n)
	newID := make([]int, g.n)
	for v := 0; v < g.n; v++ {
		root := uf.find(v)
		id, ok := compID[root]
		if !ok {
			id = len(compID)
			compID[root] = id
		}
		newID[v] = id
	}

	contracted := make(map[int]bool, len(contractIdx))
	for _, ei := range contractIdx {
		contracted[ei] = true
	}

	newEdges := make([]wedge, 0, len(g.edges))
	for i, e := range g.edges {
		if contracted[i] {
			continue
		}
		nu, nv := newID[e.u], newID[e.v]
		if nu == nv {
			continue
		}
		newEdges = append(newEdges, wedge{u: nu, v: nv, weight: e.weight, orig: e.orig})
	}

	return wgraph{n: len(compID), edges: newEdges}
}

// removeEdgesByOrig drops every edge whose original identity is in origSet.
func removeEdgesByOrig(g wgraph, origSet map[int]bool) wgraph {
	out := make([]wedge, 0, len(g.edges))
	for _, e := range g.edges {
		if origSet[e.orig] {
			continue
		}
		out = append(out, e)
	}

	return wgraph{n: g.n, edges: out}
}

// connectedComponents splits g into one sub-wgraph per connected component
// that has at least one edge (isolated nodes contribute nothing to a
// strength estimate and are dropped). Sub-wgraphs keep the parent's node
// space rather than being compacted: estimation's recursion depth is
// O(log(max strength)), so the extra idle heap capacity this costs
// nagamochiCapforest is bounded and simpler than re-indexing at every level.
func connectedComponents(g wgraph) []wgraph {
	uf := newUnionFind(g.n)
	for _, e := range g.edges {
		uf.union(e.u, e.v)
	}

	groups := make(map[int][]wedge)
	for _, e := range g.edges {
		root := uf.find(e.u)
		groups[root] = append(groups[root], e)
	}

	comps := make([]wgraph, 0, len(groups))
	for _, edges := range groups {
		comps = append(comps, wgraph{n: g.n, edges: edges})
	}

	return comps
}
