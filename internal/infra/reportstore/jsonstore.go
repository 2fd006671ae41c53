package reportstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/enzopetersen/Laboratorio/internal/domain"
	"github.com/enzopetersen/Laboratorio/internal/ports"
)

const defaultReportsDir = "reports"

type JSONStore struct {
	rootDir        string
	reportsDirName string
	writeIndex     bool
	writeCSV       bool
	now            func() time.Time
	newID          func() string
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: reports/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithCSV writes a CSV export of the diagram series next to each report.
func WithCSV(enabled bool) Option {
	return func(s *JSONStore) { s.writeCSV = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

// WithIDGenerator replaces the UUID source.
func WithIDGenerator(fn func() string) Option {
	return func(s *JSONStore) { s.newID = fn }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	reportsDir := cfg.Paths.ReportsDir
	if strings.TrimSpace(reportsDir) == "" {
		reportsDir = defaultReportsDir
	}

	s := &JSONStore{
		rootDir:        root,
		reportsDirName: reportsDir,
		now:            time.Now,
		newID:          uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ReportStore = (*JSONStore)(nil)

// Dir is the directory reports are written to.
func (s *JSONStore) Dir() string {
	return filepath.Join(s.rootDir, s.reportsDirName)
}

func (s *JSONStore) SaveReport(report domain.Report) (string, error) {
	dir := s.Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", domain.Execution("reportstore.mkdir", dir, err)
	}

	toSave := report
	if toSave.StartedAt.IsZero() {
		toSave.StartedAt = s.now()
	}
	toSave.StartedAt = toSave.StartedAt.UTC()
	if strings.TrimSpace(toSave.ID) == "" {
		toSave.ID = s.newID()
	}

	namePart := report.ExperimentName
	if strings.TrimSpace(namePart) == "" {
		namePart = strings.TrimSuffix(filepath.Base(report.ExperimentPath), filepath.Ext(report.ExperimentPath))
	}
	slug := slugify(namePart)
	if slug == "" {
		slug = "report"
	}

	stem := uniqueStem(dir, fmt.Sprintf("%s_%s", toSave.StartedAt.Format("20060102T150405Z"), slug))
	filename := stem + ".json"
	path := filepath.Join(dir, filename)

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", domain.Execution("reportstore.marshal", path, err)
	}

	if err := writeAtomic(path, b); err != nil {
		return "", err
	}

	if s.writeCSV {
		if err := s.saveCSV(filepath.Join(dir, stem+".csv"), toSave.Diagram); err != nil {
			return "", err
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, stem, filename, toSave)
	}

	return stem, nil
}

func (s *JSONStore) saveCSV(path string, d domain.MoodyDiagram) error {
	var sb strings.Builder
	if err := WriteCSV(&sb, d); err != nil {
		return domain.Execution("reportstore.csv", path, err)
	}
	return writeAtomic(path, []byte(sb.String()))
}

func writeAtomic(path string, b []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return domain.Execution("reportstore.write", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return domain.Execution("reportstore.rename", path, err)
	}
	return nil
}

// uniqueStem appends _2, _3, ... when a report with the same stem exists.
func uniqueStem(dir, stem string) string {
	candidate := stem
	for n := 2; ; n++ {
		if _, err := os.Stat(filepath.Join(dir, candidate+".json")); os.IsNotExist(err) {
			return candidate
		}
		candidate = fmt.Sprintf("%s_%d", stem, n)
	}
}

func (s *JSONStore) appendIndex(dir, stem, filename string, report domain.Report) error {
	type idx struct {
		ID         string    `json:"id"`
		Report     string    `json:"report"`
		File       string    `json:"file"`
		Experiment string    `json:"experiment"`
		StartedAt  time.Time `json:"started_at"`
		Skipped    int       `json:"skipped"`
	}
	line, err := json.Marshal(idx{
		ID:         report.ID,
		Report:     stem,
		File:       filename,
		Experiment: report.ExperimentName,
		StartedAt:  report.StartedAt,
		Skipped:    len(report.Diagram.Skipped),
	})
	if err != nil {
		return err
	}

	indexPath := filepath.Join(dir, "index.jsonl")
	f, err := os.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
