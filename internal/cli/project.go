package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/enzopetersen/Laboratorio/internal/domain"
	"github.com/enzopetersen/Laboratorio/internal/infra/experiment"
	"github.com/enzopetersen/Laboratorio/internal/infra/projectfinder"
	"github.com/enzopetersen/Laboratorio/internal/infra/reportstore"
	"github.com/enzopetersen/Laboratorio/internal/ports"
)

type projectCtx struct {
	root string
	cfg  domain.Config

	experiments ports.ExperimentLoader
	store       *reportstore.JSONStore
}

func newLocator() ports.ProjectLocator {
	return projectfinder.NewFinder()
}

func loadProject(projectFlag string) (*projectCtx, error) {
	root, err := resolveProjectRoot(projectFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := projectfinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	return &projectCtx{
		root: root,
		cfg:  cfg,
		experiments: experiment.NewLoader(
			experiment.WithExperimentsDir(cfg.Paths.ExperimentsDir),
		),
		store: reportstore.NewJSONStore(root, cfg, reportstore.WithIndex(true), reportstore.WithCSV(true)),
	}, nil
}

// configOrDefault returns the project configuration when a project can be
// found and the defaults otherwise. A broken lab.yaml is still an error.
func configOrDefault(projectFlag string) (domain.Config, error) {
	root, err := resolveProjectRoot(projectFlag)
	if err != nil {
		return domain.DefaultConfig(), nil
	}
	cfg, err := projectfinder.LoadConfig(root)
	if domain.IsKind(err, domain.KindNotFound) {
		return domain.DefaultConfig(), nil
	}
	return cfg, err
}

func resolveProjectRoot(projectFlag string) (string, error) {
	p := strings.TrimSpace(projectFlag)
	if p != "" {
		abs, err := filepath.Abs(p)
		if err != nil {
			return "", fmt.Errorf("invalid project path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	root, err := newLocator().FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("project not found from %q (tip: run `lab init`): %w", wd, err)
	}
	return root, nil
}

// resolveExperimentPath accepts a path, a file name under the experiments
// directory, a bare file stem or an experiment name.
func resolveExperimentPath(pc *projectCtx, arg string) (string, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		return "", fmt.Errorf("experiment is required (use --experiment or -x)")
	}

	if looksLikePath(in) {
		p := in
		if !filepath.IsAbs(p) {
			p = filepath.Join(pc.root, p)
		}
		return filepath.Clean(p), nil
	}

	dir := filepath.Join(pc.root, pc.cfg.Paths.ExperimentsDir)

	if experiment.HasSupportedExt(in) {
		p := filepath.Join(dir, in)
		if fileExists(p) {
			return p, nil
		}
	}

	for _, ext := range []string{".yaml", ".yml", ".toml"} {
		p := filepath.Join(dir, in+ext)
		if fileExists(p) {
			return p, nil
		}
	}

	refs, err := pc.experiments.ListExperiments(pc.root)
	if err == nil {
		for _, r := range refs {
			if strings.EqualFold(r.Name, in) {
				return r.Path, nil
			}
		}
	}

	return "", fmt.Errorf("experiment %q not found in %q", in, dir)
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
