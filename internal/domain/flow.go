package domain

import (
	"fmt"
	"math"
	"strings"
)

// Reynolds number thresholds between flow regimes in circular pipes.
const (
	LaminarLimit   = 2300.0
	TurbulentLimit = 4000.0
)

// FlowSample is the solver input for a single friction-factor evaluation.
type FlowSample struct {
	Reynolds          float64 `json:"reynolds"`
	Roughness         float64 `json:"roughness"`          // absolute wall roughness [m]
	HydraulicDiameter float64 `json:"hydraulic_diameter"` // [m]
}

// RelativeRoughness returns Roughness/HydraulicDiameter.
func (s FlowSample) RelativeRoughness() float64 {
	return s.Roughness / s.HydraulicDiameter
}

// FrictionLaw names a friction-factor correlation.
type FrictionLaw string

const (
	LawLaminar   FrictionLaw = "laminar"
	LawBlasius   FrictionLaw = "blasius"
	LawColebrook FrictionLaw = "colebrook"
)

// ParseFrictionLaw accepts a law name case-insensitively.
func ParseFrictionLaw(s string) (FrictionLaw, error) {
	switch FrictionLaw(strings.ToLower(strings.TrimSpace(s))) {
	case LawLaminar:
		return LawLaminar, nil
	case LawBlasius:
		return LawBlasius, nil
	case LawColebrook:
		return LawColebrook, nil
	default:
		return "", fmt.Errorf("unsupported friction law %q (expected laminar|blasius|colebrook)", s)
	}
}

// Regime is the flow regime implied by a Reynolds number.
type Regime string

const (
	RegimeLaminar      Regime = "laminar"
	RegimeTransitional Regime = "transitional"
	RegimeTurbulent    Regime = "turbulent"
)

// ClassifyRegime maps a Reynolds number to its regime.
func ClassifyRegime(re float64) Regime {
	switch {
	case re < LaminarLimit:
		return RegimeLaminar
	case re < TurbulentLimit:
		return RegimeTransitional
	default:
		return RegimeTurbulent
	}
}

// ResultMode selects which iterate the Colebrook solver returns once the
// convergence test passes.
type ResultMode string

const (
	// ResultModePreUpdate returns f from the start of the converged
	// iteration. This is the historical output of the lab scripts.
	ResultModePreUpdate ResultMode = "pre_update"
	// ResultModePostUpdate returns the freshly computed iterate.
	ResultModePostUpdate ResultMode = "post_update"
)

// ParseResultMode accepts "pre_update"/"post_update" (dashes allowed).
func ParseResultMode(s string) (ResultMode, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	switch ResultMode(norm) {
	case ResultModePreUpdate:
		return ResultModePreUpdate, nil
	case ResultModePostUpdate:
		return ResultModePostUpdate, nil
	default:
		return "", fmt.Errorf("unsupported result mode %q (expected pre_update|post_update)", s)
	}
}

// SolveResult is a friction factor plus iteration diagnostics.
type SolveResult struct {
	Factor     float64     `json:"factor"`
	Law        FrictionLaw `json:"law"`
	Iterations int         `json:"iterations"`
	Delta      float64     `json:"delta"` // last |fNew - f|; zero for closed-form laws
}

// Grid is a half-open arithmetic range [Start, Stop) with a fixed Step.
type Grid struct {
	Start float64 `json:"start"`
	Stop  float64 `json:"stop"`
	Step  float64 `json:"step"`
}

// MaxGridPoints bounds the number of values a single grid may produce.
const MaxGridPoints = 10_000_000

// Validate reports whether the grid describes a non-empty, finite range of
// at most MaxGridPoints values.
func (g Grid) Validate() error {
	if g.Step <= 0 || math.IsNaN(g.Step) || math.IsInf(g.Step, 0) {
		return fmt.Errorf("step must be > 0, got %g", g.Step)
	}
	if math.IsNaN(g.Start) || math.IsInf(g.Start, 0) {
		return fmt.Errorf("start must be finite, got %g", g.Start)
	}
	if math.IsNaN(g.Stop) || math.IsInf(g.Stop, 0) {
		return fmt.Errorf("stop must be finite, got %g", g.Stop)
	}
	if !(g.Stop > g.Start) {
		return fmt.Errorf("stop (%g) must be greater than start (%g)", g.Stop, g.Start)
	}
	if n := (g.Stop - g.Start) / g.Step; math.IsInf(n, 0) || n > MaxGridPoints {
		return fmt.Errorf("grid [%g, %g) with step %g exceeds %d points", g.Start, g.Stop, g.Step, MaxGridPoints)
	}
	return nil
}

// Len returns the number of values Values would produce.
func (g Grid) Len() int {
	if g.Validate() != nil {
		return 0
	}
	return int(math.Ceil((g.Stop - g.Start) / g.Step))
}

// Values materializes the grid. Values are computed as Start+i*Step rather
// than accumulated so long grids do not drift.
func (g Grid) Values() []float64 {
	n := g.Len()
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		v := g.Start + float64(i)*g.Step
		if v >= g.Stop {
			break
		}
		out = append(out, v)
	}
	return out
}
