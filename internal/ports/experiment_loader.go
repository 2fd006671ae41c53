package ports

import "github.com/enzopetersen/Laboratorio/internal/domain"

// ExperimentLoader loads bench experiments from a source (e.g., filesystem).
type ExperimentLoader interface {
	LoadExperiment(path string) (domain.Experiment, error)
	ListExperiments(root string) ([]domain.ExperimentRef, error)
}
