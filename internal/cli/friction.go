package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/enzopetersen/Laboratorio/internal/domain"
	"github.com/enzopetersen/Laboratorio/internal/infra/logger"
	"github.com/enzopetersen/Laboratorio/internal/usecase/friction"
)

const lawAuto = "auto"

func frictionCmd() *cobra.Command {
	var project string
	var sample domain.FlowSample
	var guess float64
	var law string
	var resultMode string
	var tolerance float64
	var maxIter int
	var format string
	var swamee bool

	c := &cobra.Command{
		Use:   "friction",
		Short: "Compute the Darcy friction factor for one flow sample",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := parseFormat(format, formatPretty, formatJSON)
			if err != nil {
				return err
			}

			cfg, err := configOrDefault(project)
			if err != nil {
				return err
			}
			sc := cfg.Solver
			if cmd.Flags().Changed("guess") {
				sc.InitialGuess = guess
			}
			if cmd.Flags().Changed("tolerance") {
				sc.Tolerance = tolerance
			}
			if cmd.Flags().Changed("max-iterations") {
				sc.MaxIterations = maxIter
			}
			if cmd.Flags().Changed("result-mode") {
				m, err := domain.ParseResultMode(resultMode)
				if err != nil {
					return err
				}
				sc.ResultMode = m
			}

			if swamee && resolvesToColebrook(law, sample.Reynolds) {
				g, err := friction.SwameeJain(sample.Reynolds, sample.RelativeRoughness())
				if err != nil {
					return err
				}
				sc.InitialGuess = g
			}

			solver, err := friction.NewSolverFromConfig(sc)
			if err != nil {
				return err
			}

			res, err := solveLaw(solver, law, sample, sc.InitialGuess)
			if err != nil {
				logger.L().Error("friction.solve.failed", "re", sample.Reynolds, "law", law, "err", err)
				return err
			}
			logger.L().Info("friction.solve.ok", "re", sample.Reynolds, "law", string(res.Law), "iterations", res.Iterations)

			return printFriction(cmd.OutOrStdout(), out, sample, res)
		},
	}

	c.Flags().StringVarP(&project, "project", "p", "", "Project root for solver settings (optional; autodetected)")
	c.Flags().Float64Var(&sample.Reynolds, "re", 0, "Reynolds number (required)")
	c.Flags().Float64Var(&sample.Roughness, "roughness", 0, "Absolute roughness [m]")
	c.Flags().Float64Var(&sample.HydraulicDiameter, "diameter", 0, "Hydraulic diameter [m] (required for colebrook)")
	c.Flags().Float64Var(&guess, "guess", 0.01, "Initial Colebrook guess")
	c.Flags().BoolVar(&swamee, "swamee-guess", false, "Start Colebrook from the Swamee-Jain approximation")
	c.Flags().StringVar(&law, "law", lawAuto, "Friction law: auto|laminar|blasius|colebrook")
	c.Flags().StringVar(&resultMode, "result-mode", string(domain.ResultModePreUpdate), "Colebrook result: pre_update|post_update")
	c.Flags().Float64Var(&tolerance, "tolerance", friction.DefaultTolerance, "Colebrook convergence tolerance")
	c.Flags().IntVar(&maxIter, "max-iterations", friction.DefaultMaxIterations, "Colebrook iteration cap")
	c.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")

	_ = c.MarkFlagRequired("re")
	return c
}

// resolvesToColebrook reports whether law, after auto selection, is the
// iterative Colebrook law. Unknown names are left for solveLaw to reject.
func resolvesToColebrook(law string, re float64) bool {
	if strings.EqualFold(strings.TrimSpace(law), lawAuto) {
		return domain.ClassifyRegime(re) != domain.RegimeLaminar
	}
	l, err := domain.ParseFrictionLaw(law)
	return err == nil && l == domain.LawColebrook
}

func solveLaw(s *friction.Solver, law string, sample domain.FlowSample, guess float64) (domain.SolveResult, error) {
	if strings.EqualFold(strings.TrimSpace(law), lawAuto) {
		return s.Auto(sample, guess)
	}
	l, err := domain.ParseFrictionLaw(law)
	if err != nil {
		return domain.SolveResult{}, err
	}
	return s.Factor(l, sample, guess)
}

func printFriction(w io.Writer, format string, sample domain.FlowSample, res domain.SolveResult) error {
	regime := domain.ClassifyRegime(sample.Reynolds)
	if format == formatJSON {
		return writeJSON(w, map[string]any{
			"sample": sample,
			"regime": regime,
			"result": res,
		})
	}

	rows := []row{
		{"Reynolds", num(sample.Reynolds)},
		{"Regime", string(regime)},
		{"Law", string(res.Law)},
		{"Friction factor", num(res.Factor)},
	}
	if res.Law == domain.LawColebrook {
		rows = append(rows,
			row{"Relative roughness", num(sample.RelativeRoughness())},
			row{"Iterations", fmt.Sprintf("%d", res.Iterations)},
			row{"Last delta", fmt.Sprintf("%.3e", res.Delta)},
		)
	}
	defaultTheme().printCard(w, "Friction factor", rows)
	return nil
}
