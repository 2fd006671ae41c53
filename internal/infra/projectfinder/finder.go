package projectfinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/enzopetersen/Laboratorio/internal/domain"
	"github.com/enzopetersen/Laboratorio/internal/ports"
)

// ConfigFile marks the root of a lab project.
const ConfigFile = "lab.yaml"

// Finder walks up from a directory, or from the directory of an experiment
// file, to the nearest one holding a regular lab.yaml.
type Finder struct {
	ConfigFile string
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: ConfigFile}
}

var _ ports.ProjectLocator = (*Finder)(nil)

func (f *Finder) FindRoot(start string) (string, error) {
	const op = "projectfinder.findroot"
	if start == "" {
		return "", &domain.OpError{Op: op, Kind: domain.KindInvalidConfig, Err: errors.New("start path is empty")}
	}

	dir, err := searchStart(start)
	if err != nil {
		return "", domain.Execution(op, start, err)
	}

	marker := f.ConfigFile
	if marker == "" {
		marker = ConfigFile
	}
	for cur := dir; ; {
		if isRegularFile(filepath.Join(cur, marker)) {
			return cur, nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{Op: op, Kind: domain.KindNotFound, Path: dir, Err: domain.ErrNotFound}
		}
		cur = parent
	}
}

// searchStart makes start absolute and steps out of it when it names a file.
func searchStart(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		return filepath.Dir(abs), nil
	}
	return filepath.Clean(abs), nil
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
