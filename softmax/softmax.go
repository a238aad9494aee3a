package softmax

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// LogSumExp computes lmax(x) = log Σ_i (e^{x_i} + e^{-x_i}).
//
// Stability: shifts by shift = ‖x‖∞ (via floats.Norm) before exponentiating,
// so every exponentiated term lies in (0, 1]. An empty x is defined as
// lmax(∅) = log 2, the value the formula converges to as the shift of a
// zero-length sum.
//
// Complexity: O(len(x)).
func LogSumExp(x []float64) float64 {
	if len(x) == 0 {
		return math.Log(2)
	}

	shift := floats.Norm(x, math.Inf(1))
	var sum float64
	for _, xi := range x {
		sum += math.Exp(xi-shift) + math.Exp(-xi-shift)
	}

	return shift + math.Log(sum)
}

// Gradient computes ∇lmax(x) componentwise:
//
//	∇lmax(x)_i = (e^{x_i} − e^{−x_i}) / Σ_j (e^{x_j} + e^{−x_j})
//
// Guarantees exercised by this package's tests (spec.md §4.1, §8):
//   - ‖∇lmax(x)‖₁ ≤ 1 within floating-point tolerance.
//   - ∇lmax(x)·x ≥ lmax(x) − log(2n).
//   - 1-Lipschitz: ‖∇lmax(x) − ∇lmax(y)‖₁ ≤ ‖x−y‖∞.
//
// Complexity: O(len(x)).
func Gradient(x []float64) []float64 {
	grad := make([]float64, len(x))
	if len(x) == 0 {
		return grad
	}

	shift := floats.Norm(x, math.Inf(1))
	pos := make([]float64, len(x))
	neg := make([]float64, len(x))
	var denom float64
	for i, xi := range x {
		pos[i] = math.Exp(xi - shift)
		neg[i] = math.Exp(-xi - shift)
		denom += pos[i] + neg[i]
	}
	for i := range x {
		grad[i] = (pos[i] - neg[i]) / denom
	}

	return grad
}
