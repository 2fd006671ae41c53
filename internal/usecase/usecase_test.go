package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/enzopetersen/Laboratorio/internal/domain"
	"github.com/enzopetersen/Laboratorio/internal/usecase/moody"
)

// --- fakes ---

type fakeExperimentLoader struct {
	exp  domain.Experiment
	err  error
	path string
}

func (f *fakeExperimentLoader) LoadExperiment(path string) (domain.Experiment, error) {
	f.path = path
	return f.exp, f.err
}

func (f *fakeExperimentLoader) ListExperiments(_ string) ([]domain.ExperimentRef, error) {
	return nil, nil
}

type fakeStore struct {
	saved bool
	last  domain.Report
	err   error
}

func (s *fakeStore) SaveReport(r domain.Report) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved = true
	s.last = r
	return "report-123", nil
}

type fakeInitializer struct {
	spec  domain.ProjectSpec
	force bool
}

func (f *fakeInitializer) Init(spec domain.ProjectSpec, force bool) error {
	f.spec = spec
	f.force = force
	return nil
}

func benchExperiment() domain.Experiment {
	return domain.Experiment{
		Name: "bench",
		Pipe: domain.Pipe{Length: 10, Diameter: 0.0207, Roughness: 0.000045},
		Measurements: []domain.Measurement{
			{Density: 847.5, KinematicViscosity: 1.45e-5, FlowRate: 887, PressureDrop: 0.0897},
			{Density: 847.5, KinematicViscosity: 1.45e-5, FlowRate: 721, PressureDrop: 0.0741},
		},
	}
}

func smallConfig() domain.Config {
	cfg := domain.DefaultConfig()
	cfg.Moody.Laminar = domain.Grid{Start: 100, Stop: 2300, Step: 100}
	cfg.Moody.Turbulent = domain.Grid{Start: 4000, Stop: 20000, Step: 4000}
	return cfg
}

// --- BuildMoodyReport ---

func TestBuildMoodyReport_SavesReport(t *testing.T) {
	loader := &fakeExperimentLoader{exp: benchExperiment()}
	store := &fakeStore{}
	clock := time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)

	uc := NewBuildMoodyReport(loader, moody.NewBuilder(), smallConfig(),
		WithReportStore(store),
		WithClock(func() time.Time { return clock }),
	)

	report, id, err := uc.Execute(context.Background(), "experiments/bench.yaml")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if id != "report-123" {
		t.Fatalf("expected store id, got %q", id)
	}
	if !store.saved {
		t.Fatalf("expected report saved")
	}
	if loader.path != "experiments/bench.yaml" {
		t.Fatalf("expected loader called with path, got %q", loader.path)
	}
	if report.ExperimentName != "bench" || !report.StartedAt.Equal(clock) {
		t.Fatalf("unexpected report header: %+v", report)
	}
	if len(report.Diagram.Series) != 4 {
		t.Fatalf("expected 4 series, got %d", len(report.Diagram.Series))
	}
	if got := len(report.Diagram.Experiments); got != 2 {
		t.Fatalf("expected 2 experimental points, got %d", got)
	}
	if cw, ok := report.Diagram.SeriesByLabel(moody.LabelColebrook); !ok || len(cw.Points) != 4 {
		t.Fatalf("expected 4 colebrook points, got %+v", cw)
	}
}

func TestBuildMoodyReport_ReturnsSavedID(t *testing.T) {
	store := &fakeStore{}
	uc := NewBuildMoodyReport(&fakeExperimentLoader{exp: benchExperiment()}, moody.NewBuilder(), smallConfig(),
		WithReportStore(store),
		WithReportIDs(func() string { return "7d1c5a52-0000-4000-8000-000000000001" }),
	)

	report, _, err := uc.Execute(context.Background(), "x.yaml")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if report.ID != "7d1c5a52-0000-4000-8000-000000000001" {
		t.Fatalf("expected generated id on returned report, got %q", report.ID)
	}
	if store.last.ID != report.ID {
		t.Fatalf("expected stored id %q to match returned id %q", store.last.ID, report.ID)
	}
}

func TestBuildMoodyReport_DefaultIDIsUUID(t *testing.T) {
	report, _, err := NewBuildMoodyReport(&fakeExperimentLoader{exp: benchExperiment()}, moody.NewBuilder(), smallConfig()).
		Execute(context.Background(), "x.yaml")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if _, err := uuid.Parse(report.ID); err != nil {
		t.Fatalf("expected uuid report id, got %q: %v", report.ID, err)
	}
}

func TestBuildMoodyReport_WithoutStore(t *testing.T) {
	uc := NewBuildMoodyReport(&fakeExperimentLoader{exp: benchExperiment()}, moody.NewBuilder(), smallConfig())

	_, id, err := uc.Execute(context.Background(), "x.yaml")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if id != "" {
		t.Fatalf("expected empty id without store, got %q", id)
	}
}

func TestBuildMoodyReport_LoaderError(t *testing.T) {
	want := &domain.OpError{Op: "experiment.load", Kind: domain.KindNotFound, Err: domain.ErrNotFound}
	store := &fakeStore{}
	uc := NewBuildMoodyReport(&fakeExperimentLoader{err: want}, moody.NewBuilder(), smallConfig(), WithReportStore(store))

	_, _, err := uc.Execute(context.Background(), "missing.yaml")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if store.saved {
		t.Fatalf("expected nothing saved")
	}
}

func TestBuildMoodyReport_InvalidMeasurement(t *testing.T) {
	exp := benchExperiment()
	exp.Measurements[1].Density = 0
	store := &fakeStore{}
	uc := NewBuildMoodyReport(&fakeExperimentLoader{exp: exp}, moody.NewBuilder(), smallConfig(), WithReportStore(store))

	_, _, err := uc.Execute(context.Background(), "bench.yaml")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if store.saved {
		t.Fatalf("expected nothing saved")
	}
}

func TestBuildMoodyReport_StoreError(t *testing.T) {
	boom := errors.New("disk full")
	uc := NewBuildMoodyReport(&fakeExperimentLoader{exp: benchExperiment()}, moody.NewBuilder(), smallConfig(),
		WithReportStore(&fakeStore{err: boom}))

	report, _, err := uc.Execute(context.Background(), "bench.yaml")
	if !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
	if report.ExperimentName != "bench" {
		t.Fatalf("expected built report returned alongside store error")
	}
}

func TestBuildMoodyReport_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	uc := NewBuildMoodyReport(&fakeExperimentLoader{exp: benchExperiment()}, moody.NewBuilder(), smallConfig())
	if _, _, err := uc.Execute(ctx, "bench.yaml"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

// --- ValidateExperiment ---

func TestValidateExperiment_ComputesPoints(t *testing.T) {
	uc := NewValidateExperiment(&fakeExperimentLoader{exp: benchExperiment()})

	check, err := uc.Execute(context.Background(), "bench.yaml")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(check.Points) != 2 || len(check.Regimes) != 2 {
		t.Fatalf("expected 2 points and regimes, got %+v", check)
	}
	if check.Regimes[0] != domain.RegimeLaminar {
		t.Fatalf("expected laminar bench readings, got %s", check.Regimes[0])
	}
}

func TestValidateExperiment_BadPipeWithoutMeasurements(t *testing.T) {
	exp := domain.Experiment{Name: "empty", Pipe: domain.Pipe{Length: 10, Diameter: 0, Roughness: 0}}
	uc := NewValidateExperiment(&fakeExperimentLoader{exp: exp})

	if _, err := uc.Execute(context.Background(), "x.yaml"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestValidateExperiment_BadGrid(t *testing.T) {
	exp := benchExperiment()
	exp.Turbulent = &domain.Grid{Start: 10, Stop: 10, Step: 1}
	uc := NewValidateExperiment(&fakeExperimentLoader{exp: exp})

	if _, err := uc.Execute(context.Background(), "x.yaml"); !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected invalid_input kind, got %v", err)
	}
}

// --- InitProject ---

func TestInitProject_DelegatesToInitializer(t *testing.T) {
	fi := &fakeInitializer{}
	if err := NewInitProject(fi).Execute("/tmp/lab", true); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if fi.spec.Root != "/tmp/lab" || !fi.force {
		t.Fatalf("unexpected call: %+v force=%v", fi.spec, fi.force)
	}
}
