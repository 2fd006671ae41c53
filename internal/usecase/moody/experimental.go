package moody

import (
	"fmt"
	"math"

	"github.com/enzopetersen/Laboratorio/internal/domain"
)

const (
	litersPerHourToCubicMetersPerSecond = 1.0 / (1000 * 3600)
	barToPascal                         = 1e5
)

// ExperimentalPoint reduces one reading to (Re, f) using the Darcy-Weisbach
// relation f = 2·D·Δp / (ρ·L·U²).
func ExperimentalPoint(pipe domain.Pipe, m domain.Measurement) (domain.ExperimentalPoint, error) {
	const op = "moody.experimental_point"
	if err := validatePipe(op, pipe); err != nil {
		return domain.ExperimentalPoint{}, err
	}
	switch {
	case !positive(m.Density):
		return domain.ExperimentalPoint{}, domain.InvalidInput(op, "density must be > 0, got %g", m.Density)
	case !positive(m.KinematicViscosity):
		return domain.ExperimentalPoint{}, domain.InvalidInput(op, "kinematic viscosity must be > 0, got %g", m.KinematicViscosity)
	case !positive(m.FlowRate):
		return domain.ExperimentalPoint{}, domain.InvalidInput(op, "flow rate must be > 0, got %g", m.FlowRate)
	case math.IsNaN(m.PressureDrop) || math.IsInf(m.PressureDrop, 0) || m.PressureDrop < 0:
		return domain.ExperimentalPoint{}, domain.InvalidInput(op, "pressure drop must be >= 0, got %g", m.PressureDrop)
	}

	q := m.FlowRate * litersPerHourToCubicMetersPerSecond
	dp := m.PressureDrop * barToPascal
	area := math.Pi * pipe.Diameter * pipe.Diameter / 4
	u := q / area

	return domain.ExperimentalPoint{
		Velocity:       u,
		Reynolds:       u * pipe.Diameter / m.KinematicViscosity,
		FrictionFactor: (2 * pipe.Diameter * dp) / (m.Density * pipe.Length * u * u),
	}, nil
}

// ExperimentalPoints reduces every measurement of exp, in order.
func ExperimentalPoints(exp domain.Experiment) ([]domain.ExperimentalPoint, error) {
	if err := validatePipe("moody.experimental_points", exp.Pipe); err != nil {
		return nil, err
	}
	out := make([]domain.ExperimentalPoint, 0, len(exp.Measurements))
	for i, m := range exp.Measurements {
		p, err := ExperimentalPoint(exp.Pipe, m)
		if err != nil {
			return nil, fmt.Errorf("measurements[%d]: %w", i, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// ExperimentalSeries renders points as markers only.
func ExperimentalSeries(points []domain.ExperimentalPoint) domain.Series {
	s := domain.Series{
		Label:  LabelExperimental,
		Style:  domain.Style{Color: "orange", Marker: "x"},
		Points: make([]domain.Point, 0, len(points)),
	}
	for _, p := range points {
		s.Points = append(s.Points, domain.Point{X: p.Reynolds, Y: p.FrictionFactor})
	}
	return s
}

func validatePipe(op string, p domain.Pipe) error {
	switch {
	case !positive(p.Diameter):
		return domain.InvalidInput(op, "pipe diameter must be > 0, got %g", p.Diameter)
	case !positive(p.Length):
		return domain.InvalidInput(op, "pipe length must be > 0, got %g", p.Length)
	case math.IsNaN(p.Roughness) || math.IsInf(p.Roughness, 0) || p.Roughness < 0:
		return domain.InvalidInput(op, "pipe roughness must be >= 0, got %g", p.Roughness)
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
