package usecase

import (
	"context"

	"github.com/enzopetersen/Laboratorio/internal/domain"
	"github.com/enzopetersen/Laboratorio/internal/ports"
	"github.com/enzopetersen/Laboratorio/internal/usecase/moody"
)

// ExperimentCheck is the outcome of a successful validation.
type ExperimentCheck struct {
	Experiment domain.Experiment
	Points     []domain.ExperimentalPoint
	Regimes    []domain.Regime
}

type ValidateExperiment struct {
	experiments ports.ExperimentLoader
}

func NewValidateExperiment(el ports.ExperimentLoader) *ValidateExperiment {
	return &ValidateExperiment{experiments: el}
}

// Execute loads an experiment and reduces its measurements to experimental
// points without solving any friction curve.
func (uc *ValidateExperiment) Execute(ctx context.Context, path string) (ExperimentCheck, error) {
	if err := ctx.Err(); err != nil {
		return ExperimentCheck{}, err
	}

	exp, err := uc.experiments.LoadExperiment(path)
	if err != nil {
		return ExperimentCheck{}, err
	}

	grids := map[string]*domain.Grid{"laminar": exp.Laminar, "turbulent": exp.Turbulent}
	for name, g := range grids {
		if g == nil {
			continue
		}
		if err := g.Validate(); err != nil {
			return ExperimentCheck{}, domain.InvalidInput("experiment.validate", "%s grid: %v", name, err)
		}
	}

	points, err := moody.ExperimentalPoints(exp)
	if err != nil {
		return ExperimentCheck{}, err
	}

	regimes := make([]domain.Regime, len(points))
	for i, p := range points {
		regimes[i] = domain.ClassifyRegime(p.Reynolds)
	}

	return ExperimentCheck{Experiment: exp, Points: points, Regimes: regimes}, nil
}
