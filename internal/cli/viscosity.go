package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/enzopetersen/Laboratorio/internal/domain"
	"github.com/enzopetersen/Laboratorio/internal/usecase/viscosity"
)

func viscosityCmd() *cobra.Command {
	var p1, p2 domain.ViscosityPoint
	grid := domain.Grid{Start: 0, Stop: 160, Step: 10}
	var l, h float64
	var format string

	c := &cobra.Command{
		Use:   "viscosity",
		Short: "Extrapolate oil viscosity from two readings (Walther, ASTM D341) and compute the VI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := parseFormat(format, formatPretty, formatJSON, formatCSV)
			if err != nil {
				return err
			}

			profile, err := viscosity.Extrapolate(p1, p2, grid)
			if err != nil {
				return err
			}

			v40 := viscosity.Walther(profile.Walther, 40)
			v100 := viscosity.Walther(profile.Walther, 100)
			vi, viErr := viscosity.Index(v40, v100, l, h)

			w := cmd.OutOrStdout()
			switch out {
			case formatJSON:
				payload := map[string]any{"profile": profile, "v40": v40, "v100": v100}
				if viErr == nil {
					payload["viscosity_index"] = vi
				} else {
					payload["viscosity_index_error"] = viErr.Error()
				}
				return writeJSON(w, payload)
			case formatCSV:
				return writeProfileCSV(w, profile)
			}

			printProfile(w, profile, v40, v100, vi, viErr)
			return nil
		},
	}

	c.Flags().Float64Var(&p1.Viscosity, "v1", 0, "First kinematic viscosity [cSt] (required)")
	c.Flags().Float64Var(&p1.TemperatureC, "t1", 0, "First temperature [°C] (required)")
	c.Flags().Float64Var(&p2.Viscosity, "v2", 0, "Second kinematic viscosity [cSt] (required)")
	c.Flags().Float64Var(&p2.TemperatureC, "t2", 0, "Second temperature [°C] (required)")
	c.Flags().Float64Var(&grid.Start, "from", grid.Start, "First temperature of the table [°C]")
	c.Flags().Float64Var(&grid.Stop, "to", grid.Stop, "Table end, exclusive [°C]")
	c.Flags().Float64Var(&grid.Step, "step", grid.Step, "Table step [°C]")
	c.Flags().Float64Var(&l, "L", 0, "ISO 2909 L for the 100 °C viscosity (needed when v100 <= 70 cSt)")
	c.Flags().Float64Var(&h, "H", 0, "ISO 2909 H for the 100 °C viscosity (needed when v100 <= 70 cSt)")
	c.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json|csv")

	for _, f := range []string{"v1", "t1", "v2", "t2"} {
		_ = c.MarkFlagRequired(f)
	}
	return c
}

func printProfile(w io.Writer, p domain.ViscosityProfile, v40, v100 float64, vi domain.ViscosityIndex, viErr error) {
	t := defaultTheme()

	rows := []row{
		{"Walther", fmt.Sprintf("a1=%s a2=%s", num(p.Walther.A1), num(p.Walther.A2))},
		{"ASTM D341", fmt.Sprintf("A=%s B=%s", num(p.ASTM.A), num(p.ASTM.B))},
		{"v40 / v100", fmt.Sprintf("%s / %s cSt", num(v40), num(v100))},
	}
	if viErr == nil {
		rows = append(rows, row{"Viscosity index", fmt.Sprintf("%.1f (procedure %s)", vi.Value, vi.Procedure)})
	} else {
		rows = append(rows, row{"Viscosity index", t.Warn.Render("n/a: " + viErr.Error())})
	}
	t.printCard(w, "Viscosity", rows)

	fmt.Fprintf(w, "%8s %12s %12s\n", "T [°C]", "Walther", "ASTM")
	for i, temp := range p.TemperaturesC {
		fmt.Fprintf(w, "%8.1f %12.4f %12.4f\n", temp, p.WaltherCurve[i], p.ASTMCurve[i])
	}
}
