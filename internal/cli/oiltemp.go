package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/enzopetersen/Laboratorio/internal/domain"
	"github.com/enzopetersen/Laboratorio/internal/infra/logger"
	"github.com/enzopetersen/Laboratorio/internal/usecase/oiltemp"
)

func oiltempCmd() *cobra.Command {
	var in domain.OilTempInput
	pipe := domain.DefaultThermalPipe()
	oil := domain.DefaultOilProperties()
	var format string

	c := &cobra.Command{
		Use:   "oiltemp",
		Short: "Estimate the oil temperature from an outer-wall thermocouple reading",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := parseFormat(format, formatPretty, formatJSON)
			if err != nil {
				return err
			}

			res, err := oiltemp.Estimate(in, pipe, oil, domain.DefaultAirProperties())
			if err != nil {
				return err
			}
			logger.L().Info("oiltemp.estimate.ok", "wall_c", in.WallC, "oil_c", res.OilC, "regime", string(res.Regime))

			return printOilTemp(cmd.OutOrStdout(), out, in, res)
		},
	}

	c.Flags().Float64Var(&in.AmbientC, "ambient", 0, "Ambient air temperature [°C] (required)")
	c.Flags().Float64Var(&in.WallC, "wall", 0, "Outer wall temperature [°C] (required)")
	c.Flags().Float64Var(&in.FlowRate, "flow", 0, "Oil flow rate [L/h] (required)")
	c.Flags().Float64Var(&in.Density, "density", 0, "Oil density [kg/m³] (required)")
	c.Flags().Float64Var(&in.DynamicViscosity, "viscosity", 0, "Oil dynamic viscosity [Pa·s] (required)")
	c.Flags().Float64Var(&pipe.OuterDiameter, "outer-diameter", pipe.OuterDiameter, "Pipe outer diameter [m]")
	c.Flags().Float64Var(&pipe.InnerDiameter, "inner-diameter", pipe.InnerDiameter, "Pipe inner diameter [m]")
	c.Flags().Float64Var(&pipe.Length, "length", pipe.Length, "Pipe length [m]")
	c.Flags().Float64Var(&pipe.Conductivity, "wall-conductivity", pipe.Conductivity, "Pipe wall conductivity [W/m·K]")
	c.Flags().Float64Var(&oil.Conductivity, "oil-conductivity", oil.Conductivity, "Oil conductivity [W/m·K]")
	c.Flags().Float64Var(&oil.SpecificHeat, "oil-cp", oil.SpecificHeat, "Oil specific heat [J/kg·K]")
	c.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")

	for _, f := range []string{"ambient", "wall", "flow", "density", "viscosity"} {
		_ = c.MarkFlagRequired(f)
	}
	return c
}

func printOilTemp(w io.Writer, format string, in domain.OilTempInput, res domain.OilTempResult) error {
	if format == formatJSON {
		return writeJSON(w, map[string]any{
			"input":  in,
			"result": res,
		})
	}

	defaultTheme().printCard(w, "Oil temperature", []row{
		{"Oil", fmt.Sprintf("%.3f °C", res.OilC)},
		{"Inner wall", fmt.Sprintf("%.3f °C", res.InnerSurfaceC)},
		{"Outer wall", fmt.Sprintf("%.3f °C", in.WallC)},
		{"Heat loss", fmt.Sprintf("%s W/m", num(res.HeatFlux))},
		{"Reynolds", fmt.Sprintf("%s (%s)", num(res.Reynolds), res.Regime)},
		{"Nusselt oil/air", fmt.Sprintf("%s / %s", num(res.Nusselt), num(res.AirNusselt))},
		{"h oil/air", fmt.Sprintf("%s / %s W/m²·K", num(res.OilCoefficient), num(res.AirCoefficient))},
	})
	return nil
}
