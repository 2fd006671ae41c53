// Package friction computes Darcy friction factors for pipe flow: the
// laminar and Blasius closed forms and the implicit Colebrook-White equation
// solved by fixed-point iteration.
//
// Every function is a pure function of its inputs. A Solver holds only
// immutable settings, so one value can be shared across goroutines.
package friction

import (
	"fmt"
	"math"

	"github.com/enzopetersen/Laboratorio/internal/domain"
)

const (
	DefaultTolerance     = 1e-6
	DefaultMaxIterations = 100
)

// Laminar returns the Hagen-Poiseuille factor 64/Re. The caller decides
// whether the flow is laminar; no range check is made beyond Re > 0.
func Laminar(re float64) (float64, error) {
	if err := checkReynolds("friction.laminar", re); err != nil {
		return 0, err
	}
	return 64 / re, nil
}

// Blasius returns 0.32·Re^-0.25. Empirically valid for smooth pipes with
// 4000 < Re < 1e5, but the range is not enforced.
func Blasius(re float64) (float64, error) {
	if err := checkReynolds("friction.blasius", re); err != nil {
		return 0, err
	}
	return 0.32 * math.Pow(re, -0.25), nil
}

// SwameeJain is the explicit Swamee-Jain approximation of Colebrook-White.
// It is close enough to the implicit solution to serve as an initial guess.
func SwameeJain(re, relativeRoughness float64) (float64, error) {
	const op = "friction.swamee_jain"
	if err := checkReynolds(op, re); err != nil {
		return 0, err
	}
	if !finite(relativeRoughness) || relativeRoughness < 0 {
		return 0, domain.InvalidInput(op, "relative roughness must be >= 0, got %g", relativeRoughness)
	}
	l := math.Log10(relativeRoughness/3.7 + 5.74/math.Pow(re, 0.9))
	return 0.25 / (l * l), nil
}

// Colebrook solves Colebrook-White with the default tolerance, iteration cap
// and pre-update result mode.
func Colebrook(re, roughness, hydraulicDiameter, initialGuess float64) (float64, error) {
	return defaultSolver.Colebrook(re, roughness, hydraulicDiameter, initialGuess)
}

func checkReynolds(op string, re float64) error {
	if !finite(re) || re <= 0 {
		return domain.InvalidInput(op, "reynolds number must be > 0, got %g", re)
	}
	return nil
}

func checkSample(op string, s domain.FlowSample, guess float64) error {
	if err := checkReynolds(op, s.Reynolds); err != nil {
		return err
	}
	if !finite(s.HydraulicDiameter) || s.HydraulicDiameter <= 0 {
		return domain.InvalidInput(op, "hydraulic diameter must be > 0, got %g", s.HydraulicDiameter)
	}
	if !finite(s.Roughness) || s.Roughness < 0 {
		return domain.InvalidInput(op, "roughness must be >= 0, got %g", s.Roughness)
	}
	if !finite(guess) || guess <= 0 {
		return domain.InvalidInput(op, "initial guess must be > 0, got %g", guess)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func convergenceError(op string, format string, args ...any) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindConvergence,
		Err:  fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), domain.ErrConvergence),
	}
}
