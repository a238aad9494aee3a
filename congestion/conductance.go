package congestion

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/shermanflow/core"
)

// ErrZeroDegree is returned by NewConductance when a node has no incident
// capacity: the diagonal operator 1/deg(v) is undefined there.
var ErrZeroDegree = errors.New("congestion: node has zero degree, conductance undefined")

// Conductance is the diagonal congestion approximator R = diag(1/deg(v))
// of spec.md §4.3. It is its own transpose: RTMultiply and RMultiply apply
// the identical diagonal scaling, since both operate on vectors of length
// NumNodes.
//
// Alpha is hard-coded to 1.0. Spec.md's open question notes the true bound
// involves graph conductance and is explicitly out of scope for this
// design; DESIGN.md records this as a deliberate non-decision, not an
// oversight.
type Conductance struct {
	invDeg []float64
}

// NewConductance precomputes 1/deg(v) for every node in g.
func NewConductance(g *core.Graph) (*Conductance, error) {
	n := g.NumNodes()
	invDeg := make([]float64, n)
	for v := 0; v < n; v++ {
		d := g.Degree(v)
		if d <= 0 {
			return nil, fmt.Errorf("%w: node %d", ErrZeroDegree, v)
		}
		invDeg[v] = 1 / d
	}

	return &Conductance{invDeg: invDeg}, nil
}

// RMultiply scales b componentwise by 1/deg(v).
func (c *Conductance) RMultiply(b []float64) []float64 {
	out := make([]float64, len(b))
	for i, bi := range b {
		out[i] = c.invDeg[i] * bi
	}

	return out
}

// RTMultiply is identical to RMultiply: the diagonal operator is self-adjoint.
func (c *Conductance) RTMultiply(x []float64) []float64 {
	return c.RMultiply(x)
}

// Alpha returns the constant bound 1.0.
func (c *Conductance) Alpha() float64 { return 1.0 }
