package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/shermanflow/core"
)

// GraphSuite exercises Graph construction, the fixed iteration order, and
// the B/Bᵀ/C/C⁻¹ operators.
type GraphSuite struct {
	suite.Suite
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func (s *GraphSuite) TestAddEdgeDropsZeroCapacity() {
	g := core.NewGraph(2)
	idx, err := g.AddEdge(0, 1, 0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), -1, idx)
	require.Equal(s.T(), 0, g.NumEdges())
}

func (s *GraphSuite) TestAddEdgeRejectsInvalidCapacity() {
	g := core.NewGraph(2)
	_, err := g.AddEdge(0, 1, -3)
	require.ErrorIs(s.T(), err, core.ErrInvalidCapacity)

	_, err = g.AddEdge(0, 1, 5)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, g.NumEdges())
}

func (s *GraphSuite) TestFixedEdgeOrder() {
	g := core.NewGraph(3)
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(1, 2, 2)
	_, _ = g.AddEdge(0, 2, 3)

	edges := g.Edges()
	require.Len(s.T(), edges, 3)
	require.Equal(s.T(), core.Edge{From: 0, To: 1, Capacity: 1}, edges[0])
	require.Equal(s.T(), core.Edge{From: 1, To: 2, Capacity: 2}, edges[1])
	require.Equal(s.T(), core.Edge{From: 0, To: 2, Capacity: 3}, edges[2])
}

func (s *GraphSuite) TestBAndBTDuality() {
	// Path 0 -> 1 -> 2.
	g := core.NewGraph(3)
	_, _ = g.AddEdge(0, 1, 5)
	_, _ = g.AddEdge(1, 2, 5)

	f := []float64{2, 2}
	bf, err := g.BMultiply(f)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []float64{-2, 0, 2}, bf)

	x := []float64{1, 2, 4}
	btx, err := g.BTMultiply(x)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []float64{1, 2}, btx)

	// <Bf, x> == <f, Btx>
	var lhs, rhs float64
	for i := range bf {
		lhs += bf[i] * x[i]
	}
	for i := range f {
		rhs += f[i] * btx[i]
	}
	require.InDelta(s.T(), lhs, rhs, 1e-9)
}

func (s *GraphSuite) TestCapacityOperators() {
	g := core.NewGraph(2)
	_, _ = g.AddEdge(0, 1, 4)

	cx, err := g.ApplyC([]float64{2})
	require.NoError(s.T(), err)
	require.Equal(s.T(), []float64{8}, cx)

	cinvx, err := g.ApplyCInv([]float64{8})
	require.NoError(s.T(), err)
	require.Equal(s.T(), []float64{2}, cinvx)
}

func (s *GraphSuite) TestDegreeCountsBothDirections() {
	g := core.NewGraph(2)
	_, _ = g.AddEdge(0, 1, 3)
	_, _ = g.AddEdge(1, 0, 2)

	require.Equal(s.T(), 5.0, g.Degree(0))
	require.Equal(s.T(), 5.0, g.Degree(1))
}

func (s *GraphSuite) TestDimensionMismatch() {
	g := core.NewGraph(3)
	_, _ = g.AddEdge(0, 1, 1)

	_, err := g.BMultiply([]float64{1, 2})
	require.ErrorIs(s.T(), err, core.ErrDimensionMismatch)

	_, err = g.BTMultiply([]float64{1, 2})
	require.ErrorIs(s.T(), err, core.ErrDimensionMismatch)
}
