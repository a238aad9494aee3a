// File: cut.go
// Role: residual-graph construction, BFS reachability, and boundary-edge
// extraction shared by ExactMinCut/ApproxMinCut.
package cut

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/shermanflow/core"
)

var (
	errInvalidSource = errors.New("source node index out of range")
	// ErrInvalidSource is returned when s is outside [0, NumNodes()).
	ErrInvalidSource = fmt.Errorf("cut: %w", errInvalidSource)

	errDimensionMismatch = errors.New("flow vector length does not match edge count")
	// ErrDimensionMismatch is returned when len(f) != g.NumEdges().
	ErrDimensionMismatch = fmt.Errorf("cut: %w", errDimensionMismatch)

	errInvalidEpsilon = errors.New("epsilon must be strictly positive")
	// ErrInvalidEpsilon is returned by ApproxMinCut for a non-positive eps.
	ErrInvalidEpsilon = fmt.Errorf("cut: %w", errInvalidEpsilon)
)

// ExactMinCut extracts the cut induced by flow f from source s, treating
// any strictly positive residual as traversable (spec.md §4.8's "Exact
// variant uses ε = 0").
func ExactMinCut(g *core.Graph, f []float64, s int) ([]core.Edge, error) {
	return minCut(g, f, s, 0)
}

// ApproxMinCut is ExactMinCut's counterpart for a positive threshold eps:
// an edge with residual <= eps is treated as saturated even if not
// exactly zero, tolerating floating-point noise in an approximate flow.
func ApproxMinCut(g *core.Graph, f []float64, s int, eps float64) ([]core.Edge, error) {
	if eps <= 0 {
		return nil, ErrInvalidEpsilon
	}

	return minCut(g, f, s, eps)
}

func minCut(g *core.Graph, f []float64, s int, eps float64) ([]core.Edge, error) {
	n := g.NumNodes()
	if s < 0 || s >= n {
		return nil, ErrInvalidSource
	}

	edges := g.Edges()
	if len(f) != len(edges) {
		return nil, ErrDimensionMismatch
	}

	adj := make(map[int][]int, n)
	for i, e := range edges {
		if e.Capacity-f[i] > eps {
			adj[e.From] = append(adj[e.From], i)
		}
	}

	inS := make([]bool, n)
	inS[s] = true
	queue := []int{s}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, ei := range adj[u] {
			v := edges[ei].To
			if !inS[v] {
				inS[v] = true
				queue = append(queue, v)
			}
		}
	}

	var result []core.Edge
	for _, e := range edges {
		if inS[e.From] != inS[e.To] {
			result = append(result, e)
		}
	}

	return result, nil
}
