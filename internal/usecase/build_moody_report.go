package usecase

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/enzopetersen/Laboratorio/internal/domain"
	"github.com/enzopetersen/Laboratorio/internal/ports"
	"github.com/enzopetersen/Laboratorio/internal/usecase/moody"
)

type BuildMoodyReport struct {
	experiments ports.ExperimentLoader
	builder     *moody.Builder
	store       ports.ReportStore
	cfg         domain.Config
	now         func() time.Time
	newID       func() string
	log         *slog.Logger
}

type ReportOption func(*BuildMoodyReport)

// WithReportStore saves every built report. Without it reports are only
// returned to the caller.
func WithReportStore(s ports.ReportStore) ReportOption {
	return func(uc *BuildMoodyReport) { uc.store = s }
}

func WithClock(now func() time.Time) ReportOption {
	return func(uc *BuildMoodyReport) {
		if now != nil {
			uc.now = now
		}
	}
}

// WithReportIDs replaces the uuid generator used for Report.ID.
func WithReportIDs(newID func() string) ReportOption {
	return func(uc *BuildMoodyReport) {
		if newID != nil {
			uc.newID = newID
		}
	}
}

func WithReportLogger(l *slog.Logger) ReportOption {
	return func(uc *BuildMoodyReport) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewBuildMoodyReport(el ports.ExperimentLoader, b *moody.Builder, cfg domain.Config, opts ...ReportOption) *BuildMoodyReport {
	uc := &BuildMoodyReport{
		experiments: el,
		builder:     b,
		cfg:         cfg,
		now:         time.Now,
		newID:       uuid.NewString,
		log:         slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute loads the experiment at path, builds its Moody diagram and hands
// it to the report store when one is configured. The id is empty when
// nothing was saved.
func (uc *BuildMoodyReport) Execute(ctx context.Context, path string) (domain.Report, string, error) {
	exp, err := uc.experiments.LoadExperiment(path)
	if err != nil {
		return domain.Report{}, "", err
	}

	started := uc.now().UTC()
	diagram, err := uc.builder.Build(ctx, exp, uc.cfg.Moody.Laminar, uc.cfg.Moody.Turbulent)
	if err != nil {
		uc.log.Error("report.build.failed", "experiment", exp.Name, "err", err)
		return domain.Report{}, "", err
	}

	report := domain.Report{
		ID:             uc.newID(),
		ExperimentName: exp.Name,
		ExperimentPath: path,
		Pipe:           exp.Pipe,
		Solver:         uc.cfg.Solver,
		StartedAt:      started,
		FinishedAt:     uc.now().UTC(),
		Diagram:        diagram,
	}

	if uc.store == nil {
		return report, "", nil
	}

	id, err := uc.store.SaveReport(report)
	if err != nil {
		uc.log.Error("report.save.failed", "experiment", exp.Name, "err", err)
		return report, "", err
	}
	uc.log.Info("report.saved", "experiment", exp.Name, "id", id)
	return report, id, nil
}
