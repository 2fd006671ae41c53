package domain

import (
	"fmt"
	"strings"
)

// Config represents the lab configuration loaded from lab.yaml.
type Config struct {
	Solver SolverConfig
	Moody  MoodyConfig
	Paths  PathsConfig
}

type SolverConfig struct {
	Tolerance     float64    `json:"tolerance"`
	MaxIterations int        `json:"max_iterations"`
	InitialGuess  float64    `json:"initial_guess"`
	ResultMode    ResultMode `json:"result_mode"`
}

// FailurePolicy tells the curve builder what to do when the solver fails on
// one Reynolds number.
type FailurePolicy string

const (
	FailureAbort FailurePolicy = "abort"
	FailureSkip  FailurePolicy = "skip"
)

func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch FailurePolicy(strings.ToLower(strings.TrimSpace(s))) {
	case FailureAbort:
		return FailureAbort, nil
	case FailureSkip:
		return FailureSkip, nil
	default:
		return "", fmt.Errorf("unsupported failure policy %q (expected abort|skip)", s)
	}
}

type MoodyConfig struct {
	Laminar   Grid
	Turbulent Grid

	// Workers bounds parallel Colebrook solves; <= 0 means one per CPU.
	Workers   int
	OnFailure FailurePolicy
}

type PathsConfig struct {
	ExperimentsDir string
	ReportsDir     string
}

// DefaultConfig provides sane defaults if lab.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Solver: DefaultSolverConfig(),
		Moody: MoodyConfig{
			Laminar:   Grid{Start: 100, Stop: 2300, Step: 10},
			Turbulent: Grid{Start: 1000, Stop: 1000000, Step: 1000},
			Workers:   0,
			OnFailure: FailureAbort,
		},
		Paths: PathsConfig{
			ExperimentsDir: "experiments",
			ReportsDir:     "reports",
		},
	}
}

// DefaultSolverConfig mirrors the constants of the bench scripts.
func DefaultSolverConfig() SolverConfig {
	return SolverConfig{
		Tolerance:     1e-6,
		MaxIterations: 100,
		InitialGuess:  0.01,
		ResultMode:    ResultModePreUpdate,
	}
}
