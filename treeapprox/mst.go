package treeapprox

import (
	"errors"
	"sort"

	"github.com/katalvlaran/shermanflow/core"
)

// ErrDisconnected indicates the graph has no spanning tree covering all
// nodes — mirrors prim_kruskal.ErrDisconnected from the teacher package.
var ErrDisconnected = errors.New("treeapprox: graph is disconnected; no spanning tree exists")

// unionFind is an iterative, path-compressing disjoint-set structure, used
// exactly as in prim_kruskal.Kruskal.
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

// BuildMST returns the edges of a maximum-total-capacity spanning tree of
// g's undirected view. Ties among equal-capacity edges are broken by
// insertion order (sort.SliceStable), so the result is deterministic for a
// fixed graph.
//
// Complexity: O(E log E + α(V)·E).
func BuildMST(g *core.Graph) ([]core.Edge, error) {
	n := g.NumNodes()
	if n <= 1 {
		return nil, nil
	}

	edges := g.UndirectedView()
	sorted := make([]core.Edge, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Capacity > sorted[j].Capacity // descending: maximum spanning tree
	})

	uf := newUnionFind(n)
	mst := make([]core.Edge, 0, n-1)
	for _, e := range sorted {
		if e.From == e.To {
			continue
		}
		if uf.find(e.From) != uf.find(e.To) {
			uf.union(e.From, e.To)
			mst = append(mst, e)
			if len(mst) == n-1 {
				break
			}
		}
	}
	if len(mst) != n-1 {
		return nil, ErrDisconnected
	}

	return mst, nil
}
