// Package treeapprox implements the tree-based congestion approximator of
// spec.md §4.4: a maximum-capacity spanning tree of the underlying
// undirected graph, plus a cached parent→child DFS edge order, used to
// route any zero-sum demand vector uniquely in O(n).
//
// Construction inverts capacities (c → 1/c), runs a minimum-spanning-tree
// search on the inverted weights, then inverts back — equivalently, this
// implementation sorts by descending capacity directly, which is the same
// spanning tree without ever materializing 1/c. This mirrors
// prim_kruskal.Kruskal's structure (sort, then union-find) from the
// teacher package, generalized from integer edge weights to float64
// capacities.
package treeapprox
