package treeapprox_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/shermanflow/congestion"
	"github.com/katalvlaran/shermanflow/core"
	"github.com/katalvlaran/shermanflow/treeapprox"
)

type TreeApproxSuite struct {
	suite.Suite
}

func TestTreeApproxSuite(t *testing.T) {
	suite.Run(t, new(TreeApproxSuite))
}

// buildPath builds the path graph 0-1-2-3-4 (a-b-c-d-e) with unit capacities.
func buildPath(s *TreeApproxSuite) *core.Graph {
	g := core.NewGraph(5)
	for v := 0; v < 4; v++ {
		_, err := g.AddEdge(v, v+1, 1)
		require.NoError(s.T(), err)
		_, err = g.AddEdge(v+1, v, 1)
		require.NoError(s.T(), err)
	}
	return g
}

// TestRouteFlowOnPath reproduces spec.md's end-to-end scenario 6: the path
// a-b-c-d-e rooted at b, unit capacities. New sets alpha to the number of
// edges, 8 here with both directions, so the expected route_flow values are
// divided by ta.Alpha() before comparison.
func (s *TreeApproxSuite) TestRouteFlowOnPath() {
	g := buildPath(s)
	ta, err := treeapprox.New(g, 1) // root = b
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4, ta.NumTreeEdges())

	alpha := ta.Alpha()
	demand := []float64{-4, 0, 1, 1, 2} // a,b,c,d,e
	out := ta.RMultiply(demand)

	// Actual DFS order from root b, visiting ascending-sorted neighbors in
	// reverse onto the stack: (b,c),(b,a),(c,d),(d,e). Per-edge flow is the
	// cumulative demand of the child's subtree: (b,c) carries c+d+e=4,
	// (b,a) carries a=-4, (c,d) carries d+e=3, (d,e) carries e=2.
	expectedRaw := []float64{4, -4, 3, 2}
	for i, want := range expectedRaw {
		require.InDelta(s.T(), want/alpha, out[i], 1e-9)
	}
}

func (s *TreeApproxSuite) TestDualityOnRandomGraphs() {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		n := 5 + rng.Intn(46)
		g := core.NewGraph(n)
		// Build a random connected graph: a random spanning structure plus
		// extra random edges, so BuildMST always succeeds.
		for v := 1; v < n; v++ {
			u := rng.Intn(v)
			cap := 1 + rng.Float64()*10
			_, _ = g.AddEdge(u, v, cap)
			_, _ = g.AddEdge(v, u, cap)
		}
		extra := rng.Intn(n)
		for i := 0; i < extra; i++ {
			u, v := rng.Intn(n), rng.Intn(n)
			if u == v {
				continue
			}
			cap := 1 + rng.Float64()*10
			_, _ = g.AddEdge(u, v, cap)
		}

		root := rng.Intn(n)
		ta, err := treeapprox.New(g, root)
		require.NoError(s.T(), err)

		var approx congestion.CongestionApprox = ta
		b := make([]float64, n)
		var sum float64
		for i := 0; i < n-1; i++ {
			b[i] = rng.Float64()*20 - 10
			sum += b[i]
		}
		b[n-1] = -sum // zero-sum demand

		x := make([]float64, ta.NumTreeEdges())
		for i := range x {
			x[i] = rng.Float64()*20 - 10
		}

		rb := approx.RMultiply(b)
		rtx := approx.RTMultiply(x)

		var lhs, rhs float64
		for i := range rb {
			lhs += rb[i] * x[i]
		}
		for i := range b {
			rhs += b[i] * rtx[i]
		}

		var bNorm, xNorm float64
		for _, v := range b {
			bNorm += v * v
		}
		for _, v := range x {
			xNorm += v * v
		}
		tol := 1e-9 * (bNorm + xNorm + 1)
		require.InDelta(s.T(), lhs, rhs, tol)
	}
}

func (s *TreeApproxSuite) TestInvalidRoot() {
	g := buildPath(s)
	_, err := treeapprox.New(g, 99)
	require.ErrorIs(s.T(), err, treeapprox.ErrInvalidRoot)
}

func (s *TreeApproxSuite) TestDisconnectedGraph() {
	g := core.NewGraph(4)
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(1, 0, 1)
	// Nodes 2,3 left isolated.
	_, err := treeapprox.New(g, 0)
	require.ErrorIs(s.T(), err, treeapprox.ErrDisconnected)
}
