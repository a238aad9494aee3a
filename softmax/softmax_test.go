package softmax_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/shermanflow/softmax"
)

// PropertySuite checks the quantified invariants spec.md §8 requires of
// LogSumExp/Gradient over random vectors of size 5..50.
type PropertySuite struct {
	suite.Suite
}

func TestPropertySuite(t *testing.T) {
	suite.Run(t, new(PropertySuite))
}

func randomVector(rng *rand.Rand, n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = rng.Float64()*20 - 10
	}
	return x
}

func (s *PropertySuite) TestGradientL1BoundedByOne() {
	rng := rand.New(rand.NewSource(1))
	for n := 5; n <= 50; n++ {
		x := randomVector(rng, n)
		g := softmax.Gradient(x)
		require.LessOrEqual(s.T(), floats.Norm(g, 1), 1+1e-8)
	}
}

func (s *PropertySuite) TestGradientDotBound() {
	rng := rand.New(rand.NewSource(2))
	for n := 5; n <= 50; n++ {
		x := randomVector(rng, n)
		g := softmax.Gradient(x)
		lse := softmax.LogSumExp(x)
		require.GreaterOrEqual(s.T(), floats.Dot(g, x)+1e-9, lse-math.Log(2*float64(n)))
	}
}

func (s *PropertySuite) TestGradientLipschitz() {
	rng := rand.New(rand.NewSource(3))
	for n := 5; n <= 50; n++ {
		x := randomVector(rng, n)
		y := randomVector(rng, n)
		gx := softmax.Gradient(x)
		gy := softmax.Gradient(y)

		diff := make([]float64, n)
		floats.SubTo(diff, gx, gy)
		lhs := floats.Norm(diff, 1)

		inputDiff := make([]float64, n)
		floats.SubTo(inputDiff, x, y)
		rhs := floats.Norm(inputDiff, math.Inf(1))

		require.LessOrEqual(s.T(), lhs, rhs+1e-8)
	}
}

func (s *PropertySuite) TestEmptyVector() {
	require.InDelta(s.T(), math.Log(2), softmax.LogSumExp(nil), 1e-12)
	require.Empty(s.T(), softmax.Gradient(nil))
}

func (s *PropertySuite) TestNoOverflowOnLargeInputs() {
	x := []float64{1e6, -1e6, 500}
	lse := softmax.LogSumExp(x)
	require.False(s.T(), math.IsInf(lse, 0))
	require.False(s.T(), math.IsNaN(lse))

	g := softmax.Gradient(x)
	for _, gi := range g {
		require.False(s.T(), math.IsNaN(gi))
	}
}
