// File: potential.go
// Role: the smoothed potential φ(f,b) and its gradient (spec.md §4.5).
package sherman

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/shermanflow/softmax"
)

// potential computes φ(f, b) = lmax(C⁻¹f) + lmax(2α · R(b − Bf)).
func (s *Solver) potential(f, b []float64) (float64, error) {
	cInvF, err := s.g.ApplyCInv(f)
	if err != nil {
		return 0, err
	}
	term1 := softmax.LogSumExp(cInvF)

	bf, err := s.g.BMultiply(f)
	if err != nil {
		return 0, err
	}
	resid := make([]float64, len(b))
	floats.SubTo(resid, b, bf)

	alpha := s.approx.Alpha()
	rresid := s.approx.RMultiply(resid)
	scaled := make([]float64, len(rresid))
	for i, v := range rresid {
		scaled[i] = 2 * alpha * v
	}
	term2 := softmax.LogSumExp(scaled)

	return term1 + term2, nil
}

// gradient computes ∇φ(f, b) = C⁻¹·∇lmax(C⁻¹f) − 2α·Bᵀ·Rᵀ·∇lmax(2α·R(b−Bf)).
func (s *Solver) gradient(f, b []float64) ([]float64, error) {
	cInvF, err := s.g.ApplyCInv(f)
	if err != nil {
		return nil, err
	}
	lmaxGrad1 := softmax.Gradient(cInvF)
	part1, err := s.g.ApplyCInv(lmaxGrad1)
	if err != nil {
		return nil, err
	}

	bf, err := s.g.BMultiply(f)
	if err != nil {
		return nil, err
	}
	resid := make([]float64, len(b))
	floats.SubTo(resid, b, bf)

	alpha := s.approx.Alpha()
	rresid := s.approx.RMultiply(resid)
	scaled := make([]float64, len(rresid))
	for i, v := range rresid {
		scaled[i] = 2 * alpha * v
	}
	lmaxGrad2 := softmax.Gradient(scaled)

	rtGrad2 := s.approx.RTMultiply(lmaxGrad2)
	btRtGrad2, err := s.g.BTMultiply(rtGrad2)
	if err != nil {
		return nil, err
	}

	grad := make([]float64, len(f))
	for i := range grad {
		grad[i] = part1[i] - 2*alpha*btRtGrad2[i]
	}

	return grad, nil
}
