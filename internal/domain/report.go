package domain

import "time"

// Report is a computed Moody diagram for one experiment, ready to hand to a
// plotting or reporting tool.
type Report struct {
	ID string `json:"id"`

	ExperimentName string `json:"experiment_name"`
	ExperimentPath string `json:"experiment_path"`
	Pipe           Pipe   `json:"pipe"`

	Solver SolverConfig `json:"solver"`

	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	Diagram MoodyDiagram `json:"diagram"`
}
