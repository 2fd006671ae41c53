package friction

import (
	"fmt"
	"math"

	"github.com/enzopetersen/Laboratorio/internal/domain"
)

// Solver evaluates friction laws with a fixed Colebrook configuration.
type Solver struct {
	tolerance     float64
	maxIterations int
	mode          domain.ResultMode
}

type Option func(*Solver)

// WithTolerance sets the absolute convergence threshold on |fNew - f|.
// A tolerance of 0 can never be met.
func WithTolerance(tol float64) Option {
	return func(s *Solver) { s.tolerance = tol }
}

func WithMaxIterations(n int) Option {
	return func(s *Solver) { s.maxIterations = n }
}

func WithResultMode(m domain.ResultMode) Option {
	return func(s *Solver) { s.mode = m }
}

var defaultSolver = &Solver{
	tolerance:     DefaultTolerance,
	maxIterations: DefaultMaxIterations,
	mode:          domain.ResultModePreUpdate,
}

// Default returns the solver used by the package-level Colebrook: tolerance
// 1e-6, 100 iterations, pre-update result.
func Default() *Solver {
	return defaultSolver
}

func NewSolver(opts ...Option) (*Solver, error) {
	s := *defaultSolver
	for _, opt := range opts {
		opt(&s)
	}

	switch {
	case math.IsNaN(s.tolerance) || s.tolerance < 0:
		return nil, invalidConfig(fmt.Errorf("tolerance must be >= 0, got %g", s.tolerance))
	case s.maxIterations < 1:
		return nil, invalidConfig(fmt.Errorf("max iterations must be >= 1, got %d", s.maxIterations))
	case s.mode != domain.ResultModePreUpdate && s.mode != domain.ResultModePostUpdate:
		return nil, invalidConfig(fmt.Errorf("unsupported result mode %q", s.mode))
	}
	return &s, nil
}

// NewSolverFromConfig builds a Solver from the solver section of lab.yaml.
func NewSolverFromConfig(cfg domain.SolverConfig) (*Solver, error) {
	mode := cfg.ResultMode
	if mode == "" {
		mode = domain.ResultModePreUpdate
	}
	return NewSolver(
		WithTolerance(cfg.Tolerance),
		WithMaxIterations(cfg.MaxIterations),
		WithResultMode(mode),
	)
}

func invalidConfig(err error) error {
	return &domain.OpError{
		Op:   "friction.solver",
		Kind: domain.KindInvalidConfig,
		Err:  fmt.Errorf("%v: %w", err, domain.ErrInvalidConfig),
	}
}

func (s *Solver) Tolerance() float64 {
	return s.tolerance
}

func (s *Solver) MaxIterations() int {
	return s.maxIterations
}

func (s *Solver) ResultMode() domain.ResultMode {
	return s.mode
}

// Colebrook returns the Darcy friction factor solving
//
//	1/√f = -2·log10( k/(3.7·D) + 2.51/(Re·√f) )
//
// by fixed-point iteration from initialGuess.
func (s *Solver) Colebrook(re, roughness, hydraulicDiameter, initialGuess float64) (float64, error) {
	res, err := s.Solve(domain.FlowSample{
		Reynolds:          re,
		Roughness:         roughness,
		HydraulicDiameter: hydraulicDiameter,
	}, initialGuess)
	if err != nil {
		return 0, err
	}
	return res.Factor, nil
}

// Solve runs the Colebrook iteration and reports diagnostics.
//
// In ResultModePreUpdate the factor returned is the iterate that entered the
// converged step, not the one it produced. The two differ by less than the
// tolerance.
func (s *Solver) Solve(sample domain.FlowSample, initialGuess float64) (domain.SolveResult, error) {
	const op = "friction.colebrook"
	if err := checkSample(op, sample, initialGuess); err != nil {
		return domain.SolveResult{}, err
	}

	re := sample.Reynolds
	roughnessTerm := sample.Roughness / (sample.HydraulicDiameter * 3.7)

	f := initialGuess
	var delta float64
	for i := 1; i <= s.maxIterations; i++ {
		rhs := -2 * math.Log10(roughnessTerm+2.51/(re*math.Sqrt(f)))
		next := 1 / (rhs * rhs)
		if !finite(next) || next <= 0 {
			return domain.SolveResult{}, convergenceError(op,
				"iterate diverged at iteration %d (f=%g)", i, f)
		}

		delta = math.Abs(next - f)
		if delta < s.tolerance {
			out := f
			if s.mode == domain.ResultModePostUpdate {
				out = next
			}
			return domain.SolveResult{
				Factor:     out,
				Law:        domain.LawColebrook,
				Iterations: i,
				Delta:      delta,
			}, nil
		}
		f = next
	}

	return domain.SolveResult{}, convergenceError(op,
		"no convergence after %d iterations (re=%g, f=%g, delta=%g, tolerance=%g)",
		s.maxIterations, re, f, delta, s.tolerance)
}

// Factor evaluates the requested law. initialGuess is only used by
// Colebrook.
func (s *Solver) Factor(law domain.FrictionLaw, sample domain.FlowSample, initialGuess float64) (domain.SolveResult, error) {
	switch law {
	case domain.LawLaminar:
		f, err := Laminar(sample.Reynolds)
		if err != nil {
			return domain.SolveResult{}, err
		}
		return domain.SolveResult{Factor: f, Law: law}, nil
	case domain.LawBlasius:
		f, err := Blasius(sample.Reynolds)
		if err != nil {
			return domain.SolveResult{}, err
		}
		return domain.SolveResult{Factor: f, Law: law}, nil
	case domain.LawColebrook:
		return s.Solve(sample, initialGuess)
	default:
		return domain.SolveResult{}, domain.InvalidInput("friction.factor", "unsupported friction law %q", law)
	}
}

// Auto picks the law from the flow regime: laminar below Re 2300,
// Colebrook-White otherwise.
func (s *Solver) Auto(sample domain.FlowSample, initialGuess float64) (domain.SolveResult, error) {
	if domain.ClassifyRegime(sample.Reynolds) == domain.RegimeLaminar {
		return s.Factor(domain.LawLaminar, sample, initialGuess)
	}
	return s.Factor(domain.LawColebrook, sample, initialGuess)
}
