package sherman

import (
	"errors"
	"fmt"
	"log"

	"github.com/katalvlaran/shermanflow/congestion"
	"github.com/katalvlaran/shermanflow/core"
)

// Sentinel errors for solver operations, following the two-tier wrapping
// pattern of core.ErrInvalidCapacity / flow.ErrSourceNotFound.
var (
	errInvalidEpsilon = errors.New("epsilon must lie in (0, 1)")
	// ErrInvalidEpsilon is returned when eps is out of range.
	ErrInvalidEpsilon = fmt.Errorf("sherman: %w", errInvalidEpsilon)

	errDimensionMismatch = errors.New("demand vector length does not match node count")
	// ErrDimensionMismatch is returned when a demand vector's length != g.NumNodes().
	ErrDimensionMismatch = fmt.Errorf("sherman: %w", errDimensionMismatch)

	errInvalidNode = errors.New("source/sink node index out of range or equal")
	// ErrInvalidNode is returned by MaxSTFlow for an invalid (s,t) pair.
	ErrInvalidNode = fmt.Errorf("sherman: %w", errInvalidNode)

	errMaxIterationsExceeded = errors.New("max outer iterations exceeded before convergence")
	// ErrMaxIterationsExceeded is the "inconclusive outcome" spec.md §5
	// reserves for an implementer-added step budget: AlmostRoute stopped
	// before its termination condition fired. It never affects the
	// correctness of a successful (nil-error) return.
	ErrMaxIterationsExceeded = fmt.Errorf("sherman: %w", errMaxIterationsExceeded)

	errNilGraph  = errors.New("graph is nil")
	ErrNilGraph  = fmt.Errorf("sherman: %w", errNilGraph)
	errNilApprox = errors.New("congestion approximator is nil")
	ErrNilApprox = fmt.Errorf("sherman: %w", errNilApprox)
)

// SolverOptions configures a Solver. The zero value is valid: no iteration
// budget (AlmostRoute runs until its own termination condition fires) and
// no logging.
type SolverOptions struct {
	// MaxOuterIterations caps AlmostRoute's outer loop; 0 means unbounded,
	// matching spec.md §5's statement that a step-budget is an auxiliary,
	// optional addition rather than part of the core contract.
	MaxOuterIterations int

	// Logger receives one line per rescale event and per boosting round;
	// nil disables logging, the same default posture as flow.FlowOptions'
	// Verbose flag defaulting to false.
	Logger *log.Logger
}

// DefaultSolverOptions returns the zero-budget, non-logging configuration.
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{}
}

// Solver pairs a graph with a congestion approximator; see the package doc
// for its statelessness guarantee.
type Solver struct {
	g      *core.Graph
	approx congestion.CongestionApprox
	opts   SolverOptions
}

// New validates g and approx and returns a ready Solver.
func New(g *core.Graph, approx congestion.CongestionApprox, opts SolverOptions) (*Solver, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if approx == nil {
		return nil, ErrNilApprox
	}

	return &Solver{g: g, approx: approx, opts: opts}, nil
}

func (s *Solver) logf(format string, args ...interface{}) {
	if s.opts.Logger != nil {
		s.opts.Logger.Printf(format, args...)
	}
}
