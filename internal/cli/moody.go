package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/enzopetersen/Laboratorio/internal/domain"
	"github.com/enzopetersen/Laboratorio/internal/infra/logger"
	"github.com/enzopetersen/Laboratorio/internal/infra/reportstore"
	"github.com/enzopetersen/Laboratorio/internal/usecase"
	"github.com/enzopetersen/Laboratorio/internal/usecase/friction"
	"github.com/enzopetersen/Laboratorio/internal/usecase/moody"
)

func moodyCmd() *cobra.Command {
	var project string
	var exp string
	var format string
	var noSave bool
	var workers int
	var onFailure string

	c := &cobra.Command{
		Use:   "moody",
		Short: "Build the Moody diagram for a bench experiment",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := parseFormat(format, formatPretty, formatJSON, formatCSV)
			if err != nil {
				return err
			}

			pc, err := loadProject(project)
			if err != nil {
				return err
			}

			path, err := resolveExperimentPath(pc, exp)
			if err != nil {
				return err
			}

			cfg := pc.cfg
			if cmd.Flags().Changed("workers") {
				cfg.Moody.Workers = workers
			}
			if cmd.Flags().Changed("on-failure") {
				p, err := domain.ParseFailurePolicy(onFailure)
				if err != nil {
					return err
				}
				cfg.Moody.OnFailure = p
			}

			builder, err := newMoodyBuilder(cfg)
			if err != nil {
				return err
			}

			opts := []usecase.ReportOption{usecase.WithReportLogger(logger.Component("report"))}
			if !noSave {
				opts = append(opts, usecase.WithReportStore(pc.store))
			}

			uc := usecase.NewBuildMoodyReport(pc.experiments, builder, cfg, opts...)
			report, id, err := uc.Execute(cmd.Context(), path)
			if err != nil {
				return err
			}

			reportDir := ""
			if id != "" {
				reportDir = pc.store.Dir()
			}
			return printMoody(cmd.OutOrStdout(), out, report, id, reportDir)
		},
	}

	c.Flags().StringVarP(&project, "project", "p", "", "Project root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&exp, "experiment", "x", "", "Experiment name or path (required)")
	c.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json|csv")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save the report under reports/")
	c.Flags().IntVar(&workers, "workers", 0, "Parallel Colebrook solves (0 = one per CPU)")
	c.Flags().StringVar(&onFailure, "on-failure", string(domain.FailureAbort), "Colebrook failure policy: abort|skip")

	_ = c.MarkFlagRequired("experiment")
	return c
}

func newMoodyBuilder(cfg domain.Config) (*moody.Builder, error) {
	solver, err := friction.NewSolverFromConfig(cfg.Solver)
	if err != nil {
		return nil, err
	}
	return moody.NewBuilder(
		moody.WithSolver(solver),
		moody.WithWorkers(cfg.Moody.Workers),
		moody.WithFailurePolicy(cfg.Moody.OnFailure),
		moody.WithInitialGuess(cfg.Solver.InitialGuess),
		moody.WithLogger(logger.Component("moody")),
	), nil
}

func printMoody(w io.Writer, format string, report domain.Report, id, reportDir string) error {
	switch format {
	case formatJSON:
		return writeJSON(w, map[string]any{
			"report_id": id,
			"report":    report,
		})
	case formatCSV:
		return reportstore.WriteCSV(w, report.Diagram)
	}

	t := defaultTheme()
	d := report.Diagram

	header := []row{
		{"Experiment", report.ExperimentName},
		{"Pipe", fmt.Sprintf("L=%s m  D=%s m  e=%s m", num(report.Pipe.Length), num(report.Pipe.Diameter), num(report.Pipe.Roughness))},
		{"Solver", fmt.Sprintf("tol=%g  max_iter=%d  %s", report.Solver.Tolerance, report.Solver.MaxIterations, report.Solver.ResultMode)},
	}
	if id != "" {
		header = append(header, row{"Report", filepath.Join(reportDir, id+".json")})
	}
	t.printCard(w, d.Title, header)

	var series []row
	for _, s := range d.Series {
		series = append(series, row{s.Label, seriesSummary(s)})
	}
	t.printCard(w, "Series", series)

	if len(d.Experiments) > 0 {
		var pts []row
		for i, p := range d.Experiments {
			pts = append(pts, row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprintf("U=%s m/s  Re=%s  f=%s  (%s)", num(p.Velocity), num(p.Reynolds), num(p.FrictionFactor), domain.ClassifyRegime(p.Reynolds)),
			})
		}
		t.printCard(w, "Experimental points", pts)
	}

	if len(d.Skipped) > 0 {
		fmt.Fprintln(w, t.Warn.Render(fmt.Sprintf("%d Colebrook sample(s) skipped", len(d.Skipped))))
		for _, s := range d.Skipped {
			fmt.Fprintln(w, t.Muted.Render(fmt.Sprintf("  Re=%s: %s", num(s.Reynolds), s.Reason)))
		}
	}
	return nil
}

func seriesSummary(s domain.Series) string {
	if len(s.Points) == 0 {
		return "0 points"
	}
	first, last := s.Points[0], s.Points[len(s.Points)-1]
	return fmt.Sprintf("%d points  Re %s..%s  f %s..%s", len(s.Points), num(first.X), num(last.X), num(first.Y), num(last.Y))
}
