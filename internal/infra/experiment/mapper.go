package experiment

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/enzopetersen/Laboratorio/internal/domain"
)

func mapExperiment(path string, fe fileExperiment) (domain.Experiment, error) {
	name := strings.TrimSpace(fe.Name)
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	pipe := domain.Pipe{}
	var err error
	if pipe.Length, err = required(path, "pipe.length", fe.Pipe.Length); err != nil {
		return domain.Experiment{}, err
	}
	if pipe.Diameter, err = required(path, "pipe.diameter", fe.Pipe.Diameter); err != nil {
		return domain.Experiment{}, err
	}
	if pipe.Roughness, err = required(path, "pipe.roughness", fe.Pipe.Roughness); err != nil {
		return domain.Experiment{}, err
	}

	exp := domain.Experiment{
		Name:         name,
		Pipe:         pipe,
		Measurements: make([]domain.Measurement, 0, len(fe.Measurements)),
	}

	for i, fm := range fe.Measurements {
		prefix := fmt.Sprintf("measurements[%d]", i)
		m := domain.Measurement{}

		if m.Density, err = required(path, prefix+".density", orDefault(fm.Density, fe.Defaults.Density)); err != nil {
			return domain.Experiment{}, err
		}
		if m.KinematicViscosity, err = required(path, prefix+".kinematic_viscosity", orDefault(fm.KinematicViscosity, fe.Defaults.KinematicViscosity)); err != nil {
			return domain.Experiment{}, err
		}
		if m.FlowRate, err = required(path, prefix+".flow_rate", orDefault(fm.FlowRate, fe.Defaults.FlowRate)); err != nil {
			return domain.Experiment{}, err
		}
		if m.PressureDrop, err = required(path, prefix+".pressure_drop", orDefault(fm.PressureDrop, fe.Defaults.PressureDrop)); err != nil {
			return domain.Experiment{}, err
		}

		exp.Measurements = append(exp.Measurements, m)
	}

	if exp.Laminar, err = mapGrid(path, "grids.laminar", fe.Grids.Laminar); err != nil {
		return domain.Experiment{}, err
	}
	if exp.Turbulent, err = mapGrid(path, "grids.turbulent", fe.Grids.Turbulent); err != nil {
		return domain.Experiment{}, err
	}

	return exp, nil
}

func mapGrid(path, field string, g *fileGrid) (*domain.Grid, error) {
	if g == nil {
		return nil, nil
	}
	out := domain.Grid{Start: g.Start, Stop: g.Stop, Step: g.Step}
	if err := out.Validate(); err != nil {
		return nil, invalidField(path, field, err.Error())
	}
	return &out, nil
}

func orDefault(v, def *float64) *float64 {
	if v != nil {
		return v
	}
	return def
}

func required(path, field string, v *float64) (float64, error) {
	if v == nil {
		return 0, invalidField(path, field, "value is required")
	}
	return *v, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "experiment.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
