package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/enzopetersen/Laboratorio/internal/usecase"
)

func validateCmd() *cobra.Command {
	var project string
	var exp string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Validate an experiment file and reduce its readings (no curves)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			pc, err := loadProject(project)
			if err != nil {
				return err
			}

			path, err := resolveExperimentPath(pc, exp)
			if err != nil {
				return err
			}

			check, err := usecase.NewValidateExperiment(pc.experiments).Execute(cmd.Context(), path)
			if err != nil {
				return err
			}

			printCheck(cmd.OutOrStdout(), check)
			return nil
		},
	}

	c.Flags().StringVarP(&project, "project", "p", "", "Project root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&exp, "experiment", "x", "", "Experiment name or path (required)")

	_ = c.MarkFlagRequired("experiment")
	return c
}

func printCheck(w io.Writer, check usecase.ExperimentCheck) {
	t := defaultTheme()
	fmt.Fprintf(w, "%s %s (%d reading(s))\n", t.Good.Render("OK"), check.Experiment.Name, len(check.Points))
	for i, p := range check.Points {
		fmt.Fprintf(w, "  #%d Re=%s f=%s %s\n", i+1, num(p.Reynolds), num(p.FrictionFactor), t.Muted.Render(string(check.Regimes[i])))
	}
}
