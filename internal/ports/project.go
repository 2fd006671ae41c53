package ports

import "github.com/enzopetersen/Laboratorio/internal/domain"

type ProjectInitializer interface {
	Init(spec domain.ProjectSpec, force bool) error
}
