package projectfinder

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/enzopetersen/Laboratorio/internal/domain"
)

// LoadConfig loads lab.yaml from the project root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFile)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "projectfinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "projectfinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	if err := apply(&cfg, y); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "projectfinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  fmt.Errorf("%v: %w", err, domain.ErrInvalidConfig),
		}
	}
	return cfg, nil
}

// apply overlays parsed values on top of defaults.
func apply(cfg *domain.Config, y yamlConfig) error {
	s := y.Lab.Solver
	if s.Tolerance != nil {
		if *s.Tolerance < 0 {
			return fmt.Errorf("field solver.tolerance: must be >= 0")
		}
		cfg.Solver.Tolerance = *s.Tolerance
	}
	if s.MaxIterations != nil {
		if *s.MaxIterations < 1 {
			return fmt.Errorf("field solver.max_iterations: must be >= 1")
		}
		cfg.Solver.MaxIterations = *s.MaxIterations
	}
	if s.InitialGuess != nil {
		if *s.InitialGuess <= 0 {
			return fmt.Errorf("field solver.initial_guess: must be > 0")
		}
		cfg.Solver.InitialGuess = *s.InitialGuess
	}
	if s.ResultMode != "" {
		mode, err := domain.ParseResultMode(s.ResultMode)
		if err != nil {
			return fmt.Errorf("field solver.result_mode: %v", err)
		}
		cfg.Solver.ResultMode = mode
	}

	m := y.Lab.Moody
	if err := applyGrid(&cfg.Moody.Laminar, m.Laminar, "moody.laminar"); err != nil {
		return err
	}
	if err := applyGrid(&cfg.Moody.Turbulent, m.Turbulent, "moody.turbulent"); err != nil {
		return err
	}
	if m.Workers != nil {
		cfg.Moody.Workers = *m.Workers
	}
	if m.OnFailure != "" {
		p, err := domain.ParseFailurePolicy(m.OnFailure)
		if err != nil {
			return fmt.Errorf("field moody.on_failure: %v", err)
		}
		cfg.Moody.OnFailure = p
	}

	if y.Lab.Paths.ExperimentsDir != "" {
		cfg.Paths.ExperimentsDir = y.Lab.Paths.ExperimentsDir
	}
	if y.Lab.Paths.ReportsDir != "" {
		cfg.Paths.ReportsDir = y.Lab.Paths.ReportsDir
	}
	return nil
}

func applyGrid(dst *domain.Grid, g *yamlGrid, field string) error {
	if g == nil {
		return nil
	}
	out := *dst
	if g.Start != nil {
		out.Start = *g.Start
	}
	if g.Stop != nil {
		out.Stop = *g.Stop
	}
	if g.Step != nil {
		out.Step = *g.Step
	}
	if err := out.Validate(); err != nil {
		return fmt.Errorf("field %s: %v", field, err)
	}
	*dst = out
	return nil
}

type yamlGrid struct {
	Start *float64 `yaml:"start"`
	Stop  *float64 `yaml:"stop"`
	Step  *float64 `yaml:"step"`
}

type yamlConfig struct {
	Lab struct {
		Solver struct {
			Tolerance     *float64 `yaml:"tolerance"`
			MaxIterations *int     `yaml:"max_iterations"`
			InitialGuess  *float64 `yaml:"initial_guess"`
			ResultMode    string   `yaml:"result_mode"`
		} `yaml:"solver"`

		Moody struct {
			Laminar   *yamlGrid `yaml:"laminar"`
			Turbulent *yamlGrid `yaml:"turbulent"`
			Workers   *int      `yaml:"workers"`
			OnFailure string    `yaml:"on_failure"`
		} `yaml:"moody"`

		Paths struct {
			ExperimentsDir string `yaml:"experiments_dir"`
			ReportsDir     string `yaml:"reports_dir"`
		} `yaml:"paths"`
	} `yaml:"lab"`
}
