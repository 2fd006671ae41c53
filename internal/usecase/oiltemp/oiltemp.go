// Package oiltemp estimates the temperature of oil flowing in a steel pipe
// from a thermocouple reading on the outer wall.
//
// Heat lost to still air by natural convection (Churchill-Chu, horizontal
// cylinder) is carried back through the steel wall by conduction and into
// the oil by forced convection.
package oiltemp

import (
	"math"

	"github.com/enzopetersen/Laboratorio/internal/domain"
)

const op = "oiltemp.estimate"

// Estimate returns the oil temperature for one wall reading.
func Estimate(in domain.OilTempInput, pipe domain.ThermalPipe, oil domain.OilProperties, air domain.AirProperties) (domain.OilTempResult, error) {
	if err := validate(in, pipe, oil, air); err != nil {
		return domain.OilTempResult{}, err
	}

	di := pipe.InnerDiameter
	de := pipe.OuterDiameter

	q := in.FlowRate / 1000 / 3600
	u := q / (math.Pi * di * di / 4)
	pr := in.DynamicViscosity * oil.SpecificHeat / oil.Conductivity
	re := in.Density * u * di / in.DynamicViscosity
	nu := oilNusselt(re, pr, di, pipe.Length)
	hOil := oil.Conductivity * nu / di

	prAir := air.KinematicViscosity / air.ThermalDiffusivity
	beta := 1 / ((in.WallC+in.AmbientC)/2 + domain.CelsiusToKelvin)
	// |ΔT| keeps Ra real when the wall is colder than the air; the sign
	// is carried by the heat flux below.
	ra := domain.StandardGravity * beta * math.Abs(in.WallC-in.AmbientC) * de * de * de /
		(air.KinematicViscosity * air.ThermalDiffusivity)
	nuAir := airNusselt(ra, prAir)
	hAir := air.Conductivity * nuAir / de

	flux := (in.WallC - in.AmbientC) / (1 / (math.Pi * de * hAir))
	inner := flux*(math.Log(de/di)/(2*math.Pi*pipe.Conductivity)) + in.WallC
	oilC := flux*(1/(math.Pi*di*hOil)) + inner

	return domain.OilTempResult{
		OilC:           oilC,
		InnerSurfaceC:  inner,
		HeatFlux:       flux,
		Velocity:       u,
		Reynolds:       re,
		Regime:         domain.ClassifyRegime(re),
		Prandtl:        pr,
		Nusselt:        nu,
		OilCoefficient: hOil,
		AirRayleigh:    ra,
		AirPrandtl:     prAir,
		AirNusselt:     nuAir,
		AirCoefficient: hAir,
	}, nil
}

// EstimateDefault uses the bench line geometry and fluid constants.
func EstimateDefault(in domain.OilTempInput) (domain.OilTempResult, error) {
	return Estimate(in, domain.DefaultThermalPipe(), domain.DefaultOilProperties(), domain.DefaultAirProperties())
}

// oilNusselt: fully developed laminar (constant wall temperature), the
// Hausen developing-flow correlation in the transition band, Dittus-Boelter
// style above it.
func oilNusselt(re, pr, di, length float64) float64 {
	switch domain.ClassifyRegime(re) {
	case domain.RegimeLaminar:
		return 3.66
	case domain.RegimeTransitional:
		gz := re * pr * di / length
		return 3.66 + (0.068*gz)/(1+0.04*math.Pow(gz, 2.0/3.0))
	default:
		return 0.023 * math.Pow(re, 3.0/4.0) * math.Pow(pr, 0.3)
	}
}

func airNusselt(ra, pr float64) float64 {
	n := 0.6 + (0.387*math.Pow(ra, 1.0/6.0))/math.Pow(1+math.Pow(0.559/pr, 9.0/16.0), 8.0/27.0)
	return n * n
}

func validate(in domain.OilTempInput, pipe domain.ThermalPipe, oil domain.OilProperties, air domain.AirProperties) error {
	checks := []struct {
		name string
		v    float64
	}{
		{"flow rate", in.FlowRate},
		{"density", in.Density},
		{"dynamic viscosity", in.DynamicViscosity},
		{"outer diameter", pipe.OuterDiameter},
		{"inner diameter", pipe.InnerDiameter},
		{"pipe length", pipe.Length},
		{"steel conductivity", pipe.Conductivity},
		{"oil conductivity", oil.Conductivity},
		{"oil specific heat", oil.SpecificHeat},
		{"air conductivity", air.Conductivity},
		{"air thermal diffusivity", air.ThermalDiffusivity},
		{"air kinematic viscosity", air.KinematicViscosity},
	}
	for _, c := range checks {
		if !(c.v > 0) || math.IsInf(c.v, 0) {
			return domain.InvalidInput(op, "%s must be > 0, got %g", c.name, c.v)
		}
	}
	if pipe.OuterDiameter <= pipe.InnerDiameter {
		return domain.InvalidInput(op, "outer diameter (%g) must exceed inner diameter (%g)", pipe.OuterDiameter, pipe.InnerDiameter)
	}
	for name, v := range map[string]float64{"ambient temperature": in.AmbientC, "wall temperature": in.WallC} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= -domain.CelsiusToKelvin {
			return domain.InvalidInput(op, "%s must be above absolute zero, got %g", name, v)
		}
	}
	return nil
}
