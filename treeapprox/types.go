package treeapprox

import "errors"

// ErrInvalidRoot indicates the requested root index is outside [0, n).
var ErrInvalidRoot = errors.New("treeapprox: root index out of range")

// treeEdge is one entry of the cached DFS edge order: a tree edge oriented
// root-away, in the order it was first discovered.
type treeEdge struct {
	parent, child int
	capacity      float64
}

// TreeApprox is the tree congestion approximator of spec.md §4.4: a
// maximum-capacity spanning tree rooted at root, with its DFS edge order
// cached so RMultiply/RTMultiply both run in O(n).
type TreeApprox struct {
	root     int
	numNodes int
	dfsOrder []treeEdge
	alpha    float64
}

// Root returns the tree's root node index.
func (t *TreeApprox) Root() int { return t.root }

// NumTreeEdges returns len(dfsOrder), always n-1 for a tree over n nodes
// (spec.md §3's tree-decomposition invariant).
func (t *TreeApprox) NumTreeEdges() int { return len(t.dfsOrder) }
