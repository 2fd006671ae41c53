package viscosity

import (
	"math"

	"github.com/enzopetersen/Laboratorio/internal/domain"
)

// ReferenceLH returns L and H for oils whose 100 °C viscosity exceeds
// 70 mm²/s. Below that, ISO 2909 tabulates them.
func ReferenceLH(v100 float64) (l, h float64, ok bool) {
	if !(v100 > 70) {
		return 0, 0, false
	}
	l = 0.835*v100*v100 + 14.67*v100 - 216
	h = 0.168*v100*v100 + 11.85*v100 - 97
	return l, h, true
}

// Index computes the ISO 2909 viscosity index from the 40 °C and 100 °C
// kinematic viscosities. l and h are the table values for v100; pass zero
// for both to derive them when v100 > 70.
//
// Procedure A applies when v40 >= h, procedure B (VI above 100) otherwise.
func Index(v40, v100, l, h float64) (domain.ViscosityIndex, error) {
	const op = "viscosity.index"
	if !(v40 > 0) || math.IsInf(v40, 0) {
		return domain.ViscosityIndex{}, domain.InvalidInput(op, "40 °C viscosity must be > 0, got %g", v40)
	}
	if !(v100 > 0) || math.IsInf(v100, 0) {
		return domain.ViscosityIndex{}, domain.InvalidInput(op, "100 °C viscosity must be > 0, got %g", v100)
	}

	if l == 0 && h == 0 {
		var ok bool
		l, h, ok = ReferenceLH(v100)
		if !ok {
			return domain.ViscosityIndex{}, domain.InvalidInput(op,
				"L and H must be taken from the ISO 2909 table when the 100 °C viscosity is %g (<= 70)", v100)
		}
	}
	if !(l > h) || !(h > 0) {
		return domain.ViscosityIndex{}, domain.InvalidInput(op, "expected L > H > 0, got L=%g H=%g", l, h)
	}

	if v40 >= h {
		return domain.ViscosityIndex{
			Value:     (l - v40) / (l - h) * 100,
			Procedure: domain.ProcedureA,
			L:         l,
			H:         h,
		}, nil
	}

	if v100 == 1 {
		return domain.ViscosityIndex{}, domain.InvalidInput(op, "procedure B is undefined for a 100 °C viscosity of 1")
	}
	n := (math.Log10(h) - math.Log10(v40)) / math.Log10(v100)
	return domain.ViscosityIndex{
		Value:     (math.Pow(10, n)-1)/0.00715 + 100,
		Procedure: domain.ProcedureB,
		L:         l,
		H:         h,
	}, nil
}
