// Package experiment loads bench experiments from YAML or TOML files.
package experiment

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/enzopetersen/Laboratorio/internal/domain"
	"github.com/enzopetersen/Laboratorio/internal/ports"
)

type Loader struct {
	experimentsDir string
}

type Option func(*Loader)

func WithExperimentsDir(dir string) Option {
	return func(l *Loader) { l.experimentsDir = dir }
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{experimentsDir: "experiments"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.ExperimentLoader = (*Loader)(nil)

func (l *Loader) LoadExperiment(path string) (domain.Experiment, error) {
	fe, err := decodeFile(path)
	if err != nil {
		return domain.Experiment{}, err
	}
	return mapExperiment(path, fe)
}

func (l *Loader) ListExperiments(root string) ([]domain.ExperimentRef, error) {
	dir := filepath.Join(root, l.experimentsDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "experiment.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.ExperimentRef
	for _, e := range entries {
		if e.IsDir() || !HasSupportedExt(e.Name()) {
			continue
		}

		p := filepath.Join(dir, e.Name())
		n := ""
		if fe, err := decodeFile(p); err == nil {
			n = strings.TrimSpace(fe.Name)
		}
		if n == "" {
			n = strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		}

		refs = append(refs, domain.ExperimentRef{Name: n, Path: p})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

// HasSupportedExt reports whether name is a YAML or TOML file.
func HasSupportedExt(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".toml":
		return true
	}
	return false
}

func decodeFile(path string) (fileExperiment, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return fileExperiment{}, &domain.OpError{
			Op:   "experiment.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var fe fileExperiment
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		_, err = toml.Decode(string(b), &fe)
	} else {
		err = yaml.Unmarshal(b, &fe)
	}
	if err != nil {
		return fileExperiment{}, &domain.OpError{
			Op:   "experiment.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return fe, nil
}
