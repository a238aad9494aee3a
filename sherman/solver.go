// File: solver.go
// Role: AlmostRoute (inner solver), MinCongestionFlow (boosting outer loop),
// MaxFlow, and the MaxSTFlow convenience wrapper.
package sherman

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// AlmostRoute implements spec.md §4.5.1: given demand b, return a flow f
// with Bf approximately b, by descending the smoothed potential φ(f,b)
// with a Nesterov-accelerated subgradient step.
func (s *Solver) AlmostRoute(b []float64, eps float64) ([]float64, error) {
	n := s.g.NumNodes()
	m := s.g.NumEdges()
	if len(b) != n {
		return nil, ErrDimensionMismatch
	}
	if eps <= 0 || eps >= 1 {
		return nil, ErrInvalidEpsilon
	}
	if floats.Norm(b, math.Inf(1)) == 0 {
		// A zero demand is already exactly routed by the zero flow. This
		// is also a necessary special case: the progress/rescale inner
		// loop below scales b outward whenever phi is too small, which
		// can never raise phi for a b that stays identically zero.
		return make([]float64, m), nil
	}

	alpha := s.approx.Alpha()
	k1 := 7 / (2 * eps)
	k2 := 2.0 / 7.0
	logN := math.Log(math.Max(float64(n), 2))

	f := make([]float64, m)
	y := make([]float64, m)
	bb := append([]float64(nil), b...)
	scaling := 1.0

	rb := s.approx.RMultiply(bb)
	if normRb := floats.Norm(rb, math.Inf(1)); normRb > 0 {
		factor := math.Abs(k1 * logN / (2 * alpha * normRb))
		floats.Scale(factor, bb)
		scaling *= factor
	}

	iters := 1
	for step := 0; s.opts.MaxOuterIterations <= 0 || step < s.opts.MaxOuterIterations; step++ {
		for {
			phi, err := s.potential(f, bb)
			if err != nil {
				return nil, err
			}
			if phi >= k1*logN {
				break
			}
			factor := (k1 + 1) / k1
			floats.Scale(factor, f)
			floats.Scale(factor, y)
			floats.Scale(factor, bb)
			scaling *= factor
			s.logf("almost_route: rescaled by %.6g (phi=%.6g < %.6g)", factor, phi, k1*logN)
		}

		g, err := s.gradient(y, bb)
		if err != nil {
			return nil, err
		}
		cg, err := s.g.ApplyC(g)
		if err != nil {
			return nil, err
		}
		delta := floats.Norm(cg, 1)

		if delta < k2*eps {
			out := make([]float64, m)
			for i := range out {
				out[i] = f[i] / scaling
			}

			return out, nil
		}

		fPrev := f
		signG := make([]float64, len(g))
		for i, v := range g {
			switch {
			case v > 0:
				signG[i] = 1
			case v < 0:
				signG[i] = -1
			}
		}
		cSign, err := s.g.ApplyC(signG)
		if err != nil {
			return nil, err
		}
		stepSize := delta / (1 + 4*alpha*alpha)

		f = make([]float64, m)
		for i := range f {
			f[i] = y[i] - stepSize*cSign[i]
		}
		momentum := float64(iters-1) / float64(iters+2)
		y = make([]float64, m)
		for i := range y {
			y[i] = f[i] + momentum*(f[i]-fPrev[i])
		}
		iters++
	}

	return nil, ErrMaxIterationsExceeded
}

// MinCongestionFlow implements spec.md §4.5.2's boosting outer loop:
// AlmostRoute(b, eps), then floor(log2(2m)) further rounds at eps=0.5 on
// the residual demand, accumulating f.
func (s *Solver) MinCongestionFlow(b []float64, eps float64) ([]float64, error) {
	n := s.g.NumNodes()
	m := s.g.NumEdges()
	if len(b) != n {
		return nil, ErrDimensionMismatch
	}

	fTotal := make([]float64, m)
	bCur := append([]float64(nil), b...)

	f, err := s.AlmostRoute(bCur, eps)
	if err != nil {
		return nil, err
	}
	floats.Add(fTotal, f)
	bf, err := s.g.BMultiply(f)
	if err != nil {
		return nil, err
	}
	floats.SubTo(bCur, bCur, bf)

	rounds := int(math.Floor(math.Log2(2 * math.Max(float64(m), 1))))
	s.logf("min_congestion_flow: %d residual-correction rounds scheduled", rounds)
	for r := 0; r < rounds; r++ {
		f, err = s.AlmostRoute(bCur, 0.5)
		if err != nil {
			return nil, err
		}
		floats.Add(fTotal, f)
		bf, err = s.g.BMultiply(f)
		if err != nil {
			return nil, err
		}
		floats.SubTo(bCur, bCur, bf)
		s.logf("min_congestion_flow: round %d/%d residual ‖b‖∞=%.6g", r+1, rounds, floats.Norm(bCur, math.Inf(1)))
	}

	return fTotal, nil
}

// MaxFlow implements spec.md §4.5.3: run MinCongestionFlow, rescale the
// result so its tightest edge sits at capacity, and report the net flow
// into every sink node (demand_i > 0).
func (s *Solver) MaxFlow(demand []float64, eps float64) (float64, []float64, error) {
	f, err := s.MinCongestionFlow(demand, eps)
	if err != nil {
		return 0, nil, err
	}

	cInvF, err := s.g.ApplyCInv(f)
	if err != nil {
		return 0, nil, err
	}
	maxCongestion := floats.Norm(cInvF, math.Inf(1))
	if maxCongestion == 0 {
		return 0, f, nil
	}

	fMax := make([]float64, len(f))
	for i := range fMax {
		fMax[i] = f[i] / maxCongestion
	}
	bfMax, err := s.g.BMultiply(fMax)
	if err != nil {
		return 0, nil, err
	}

	var value float64
	for i, d := range demand {
		if d > 0 {
			value += bfMax[i]
		}
	}

	return value, fMax, nil
}

// MaxSTFlow implements spec.md §4.5.4: builds the s-t demand vector
// (b_s=-1, b_t=+1) and calls MaxFlow.
func (s *Solver) MaxSTFlow(src, sink int, eps float64) (float64, []float64, error) {
	n := s.g.NumNodes()
	if src < 0 || src >= n || sink < 0 || sink >= n || src == sink {
		return 0, nil, ErrInvalidNode
	}

	b := make([]float64, n)
	b[src] = -1
	b[sink] = 1

	return s.MaxFlow(b, eps)
}
