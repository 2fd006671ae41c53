// Package viscosity extrapolates the kinematic viscosity of lubricating oils
// from two reference measurements and computes the ISO 2909 viscosity
// index.
//
// Two viscosity-temperature correlations are fitted through the same pair
// of points:
//
//	Walther (Puttagunta 1992, Aboul-Seoud & Moharam 1999): ln(ln(v+0.8)) = a1 + a2·ln(T)
//	ASTM D341 (MacCoull):                                    log(log(Z)) = A - B·log(T)
//
// with v in mm²/s and T in kelvin.
package viscosity

import (
	"math"

	"github.com/enzopetersen/Laboratorio/internal/domain"
)

// FitWalther fits the Walther equation through two reference points.
func FitWalther(p1, p2 domain.ViscosityPoint) (domain.WaltherFit, error) {
	const op = "viscosity.walther"
	if err := checkPair(op, p1, p2, 0.2); err != nil {
		return domain.WaltherFit{}, err
	}

	a1, a2, err := solve2x2(
		1, math.Log(kelvin(p1.TemperatureC)),
		1, math.Log(kelvin(p2.TemperatureC)),
		math.Log(math.Log(p1.Viscosity+0.8)),
		math.Log(math.Log(p2.Viscosity+0.8)),
	)
	if err != nil {
		return domain.WaltherFit{}, domain.InvalidInput(op, "%v", err)
	}
	return domain.WaltherFit{A1: a1, A2: a2}, nil
}

// Walther evaluates a fitted Walther curve at tempC.
func Walther(fit domain.WaltherFit, tempC float64) float64 {
	return math.Exp(math.Exp(fit.A1+fit.A2*math.Log(kelvin(tempC)))) - 0.8
}

// FitASTM fits the ASTM D341 equation through two reference points.
func FitASTM(p1, p2 domain.ViscosityPoint) (domain.ASTMFit, error) {
	const op = "viscosity.astm"
	if err := checkPair(op, p1, p2, 0); err != nil {
		return domain.ASTMFit{}, err
	}

	a, b, err := solve2x2(
		1, -math.Log10(kelvin(p1.TemperatureC)),
		1, -math.Log10(kelvin(p2.TemperatureC)),
		math.Log10(math.Log10(astmZ(p1.Viscosity))),
		math.Log10(math.Log10(astmZ(p2.Viscosity))),
	)
	if err != nil {
		return domain.ASTMFit{}, domain.InvalidInput(op, "%v", err)
	}
	return domain.ASTMFit{A: a, B: b}, nil
}

// ASTM evaluates a fitted ASTM D341 curve at tempC.
func ASTM(fit domain.ASTMFit, tempC float64) float64 {
	z := math.Pow(10, math.Pow(10, fit.A-fit.B*math.Log10(kelvin(tempC))))
	return astmInverse(z)
}

// Extrapolate fits both correlations and evaluates them over temps.
func Extrapolate(p1, p2 domain.ViscosityPoint, temps domain.Grid) (domain.ViscosityProfile, error) {
	if err := temps.Validate(); err != nil {
		return domain.ViscosityProfile{}, domain.InvalidInput("viscosity.extrapolate", "temperature grid: %v", err)
	}

	w, err := FitWalther(p1, p2)
	if err != nil {
		return domain.ViscosityProfile{}, err
	}
	a, err := FitASTM(p1, p2)
	if err != nil {
		return domain.ViscosityProfile{}, err
	}

	ts := temps.Values()
	out := domain.ViscosityProfile{
		Reference:     [2]domain.ViscosityPoint{p1, p2},
		Walther:       w,
		ASTM:          a,
		TemperaturesC: ts,
		WaltherCurve:  make([]float64, len(ts)),
		ASTMCurve:     make([]float64, len(ts)),
	}
	for i, t := range ts {
		out.WaltherCurve[i] = Walther(w, t)
		out.ASTMCurve[i] = ASTM(a, t)
	}
	return out, nil
}

// astmZ is MacCoull's Z for viscosities below 2 cSt; it tends to v+0.7
// above that.
func astmZ(v float64) float64 {
	return v + 0.7 + math.Exp(-1.47-1.84*v-0.51*v*v)
}

func astmInverse(z float64) float64 {
	x := z - 0.7
	return x - math.Exp(-0.7487-3.295*x+0.6119*x*x-0.3193*x*x*x)
}

func kelvin(c float64) float64 {
	return c + domain.CelsiusToKelvin
}

// checkPair needs two distinct temperatures and viscosities above min so the
// double logarithms are defined.
func checkPair(op string, p1, p2 domain.ViscosityPoint, min float64) error {
	for i, p := range []domain.ViscosityPoint{p1, p2} {
		if math.IsNaN(p.Viscosity) || math.IsInf(p.Viscosity, 0) || p.Viscosity <= min {
			return domain.InvalidInput(op, "reference %d: viscosity must be > %g, got %g", i+1, min, p.Viscosity)
		}
		if math.IsNaN(p.TemperatureC) || math.IsInf(p.TemperatureC, 0) || kelvin(p.TemperatureC) <= 0 {
			return domain.InvalidInput(op, "reference %d: temperature must be above absolute zero, got %g", i+1, p.TemperatureC)
		}
	}
	if p1.TemperatureC == p2.TemperatureC {
		return domain.InvalidInput(op, "reference temperatures must differ, both are %g", p1.TemperatureC)
	}
	return nil
}
