// Package moody builds the curve family of a Moody diagram (laminar,
// Blasius and Colebrook-White friction factors over Reynolds grids) and
// reduces bench measurements to experimental points on the same axes.
package moody

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/enzopetersen/Laboratorio/internal/domain"
	"github.com/enzopetersen/Laboratorio/internal/usecase/friction"
)

// Series labels, in the order they appear in a diagram.
const (
	LabelLaminar      = "Laminar"
	LabelBlasius      = "Blasius"
	LabelColebrook    = "Colebrook"
	LabelExperimental = "Experimental"
)

type Builder struct {
	solver  *friction.Solver
	workers int
	policy  domain.FailurePolicy
	guess   float64
	log     *slog.Logger
}

type Option func(*Builder)

func WithSolver(s *friction.Solver) Option {
	return func(b *Builder) {
		if s != nil {
			b.solver = s
		}
	}
}

// WithWorkers bounds concurrent Colebrook solves. n <= 0 uses one worker
// per CPU.
func WithWorkers(n int) Option {
	return func(b *Builder) { b.workers = n }
}

func WithFailurePolicy(p domain.FailurePolicy) Option {
	return func(b *Builder) { b.policy = p }
}

func WithInitialGuess(f float64) Option {
	return func(b *Builder) { b.guess = f }
}

func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.log = l
		}
	}
}

func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		solver: friction.Default(),
		policy: domain.FailureAbort,
		guess:  domain.DefaultSolverConfig().InitialGuess,
		log:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Laminar evaluates 64/Re at every Reynolds number.
func (b *Builder) Laminar(res []float64) (domain.Series, error) {
	return closedForm(LabelLaminar, domain.LawLaminar, domain.Style{Color: "blue", LineStyle: "-"}, res, friction.Laminar)
}

// Blasius evaluates 0.32·Re^-0.25 at every Reynolds number.
func (b *Builder) Blasius(res []float64) (domain.Series, error) {
	return closedForm(LabelBlasius, domain.LawBlasius, domain.Style{Color: "red", LineStyle: "-"}, res, friction.Blasius)
}

func closedForm(label string, law domain.FrictionLaw, style domain.Style, res []float64, fn func(float64) (float64, error)) (domain.Series, error) {
	s := domain.Series{
		Label:  label,
		Law:    law,
		Style:  style,
		Points: make([]domain.Point, 0, len(res)),
	}
	for _, re := range res {
		f, err := fn(re)
		if err != nil {
			return domain.Series{}, err
		}
		s.Points = append(s.Points, domain.Point{X: re, Y: f})
	}
	return s, nil
}

// Colebrook solves Colebrook-White for every Reynolds number on the given
// pipe. Samples are independent and solved concurrently; the returned
// points keep the input order.
//
// Under FailureAbort the first failure cancels the batch and is returned.
// Under FailureSkip failed samples are left out of the series and reported
// as SkippedSample. Context cancellation always aborts.
func (b *Builder) Colebrook(ctx context.Context, res []float64, pipe domain.Pipe) (domain.Series, []domain.SkippedSample, error) {
	if err := validatePipe("moody.colebrook", pipe); err != nil {
		return domain.Series{}, nil, err
	}

	workers := b.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	factors := make([]float64, len(res))
	failures := make([]error, len(res))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, re := range res {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			f, err := b.solver.Colebrook(re, pipe.Roughness, pipe.Diameter, b.guess)
			if err != nil {
				if b.policy == domain.FailureSkip {
					failures[i] = err
					return nil
				}
				return fmt.Errorf("colebrook at re=%g: %w", re, err)
			}
			factors[i] = f
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		b.log.Error("moody.colebrook.failed", "err", err, "samples", len(res))
		return domain.Series{}, nil, err
	}

	s := domain.Series{
		Label:  LabelColebrook,
		Law:    domain.LawColebrook,
		Style:  domain.Style{Color: "green", LineStyle: "-"},
		Points: make([]domain.Point, 0, len(res)),
	}
	var skipped []domain.SkippedSample
	for i, re := range res {
		if failures[i] != nil {
			b.log.Warn("moody.colebrook.skip", "reynolds", re, "err", failures[i])
			skipped = append(skipped, domain.SkippedSample{Reynolds: re, Reason: failures[i].Error()})
			continue
		}
		s.Points = append(s.Points, domain.Point{X: re, Y: factors[i]})
	}
	return s, skipped, nil
}

// Build assembles the full diagram for an experiment. The experiment's own
// grids, when set, take precedence over the ones passed in.
func (b *Builder) Build(ctx context.Context, exp domain.Experiment, laminar, turbulent domain.Grid) (domain.MoodyDiagram, error) {
	if exp.Laminar != nil {
		laminar = *exp.Laminar
	}
	if exp.Turbulent != nil {
		turbulent = *exp.Turbulent
	}
	if err := laminar.Validate(); err != nil {
		return domain.MoodyDiagram{}, domain.InvalidInput("moody.build", "laminar grid: %v", err)
	}
	if err := turbulent.Validate(); err != nil {
		return domain.MoodyDiagram{}, domain.InvalidInput("moody.build", "turbulent grid: %v", err)
	}

	points, err := ExperimentalPoints(exp)
	if err != nil {
		return domain.MoodyDiagram{}, err
	}

	turbRe := turbulent.Values()
	b.log.Info("moody.build.start",
		"experiment", exp.Name,
		"laminar_samples", laminar.Len(),
		"turbulent_samples", len(turbRe),
		"policy", string(b.policy),
	)

	lam, err := b.Laminar(laminar.Values())
	if err != nil {
		return domain.MoodyDiagram{}, err
	}
	bl, err := b.Blasius(turbRe)
	if err != nil {
		return domain.MoodyDiagram{}, err
	}
	cw, skipped, err := b.Colebrook(ctx, turbRe, exp.Pipe)
	if err != nil {
		return domain.MoodyDiagram{}, err
	}

	b.log.Info("moody.build.ok", "experiment", exp.Name, "skipped", len(skipped))

	return domain.MoodyDiagram{
		Title:       "Moody diagram",
		X:           domain.Axis{Label: "Reynolds", Log: true, Ticks: reynoldsTicks()},
		Y:           domain.Axis{Label: "Friction factor", Log: true, Ticks: frictionTicks()},
		Series:      []domain.Series{lam, bl, cw, ExperimentalSeries(points)},
		Experiments: points,
		Skipped:     skipped,
	}, nil
}

func reynoldsTicks() []domain.Tick {
	return []domain.Tick{
		{Value: 1e2, Label: "10²"},
		{Value: 1e3, Label: "10³"},
		{Value: 1e4, Label: "10⁴"},
		{Value: 1e5, Label: "10⁵"},
		{Value: 1e6, Label: "10⁶"},
	}
}

// 0.08 and 0.09 keep their grid lines but lose the label; they crowd 0.1
// on a log axis.
func frictionTicks() []domain.Tick {
	return []domain.Tick{
		{Value: 0.01, Label: "0.01"},
		{Value: 0.02, Label: "0.02"},
		{Value: 0.03, Label: "0.03"},
		{Value: 0.04, Label: "0.04"},
		{Value: 0.05, Label: "0.05"},
		{Value: 0.06, Label: "0.06"},
		{Value: 0.07, Label: "0.07"},
		{Value: 0.08},
		{Value: 0.09},
		{Value: 0.1, Label: "0.1"},
		{Value: 0.2, Label: "0.2"},
		{Value: 0.3, Label: "0.3"},
	}
}
