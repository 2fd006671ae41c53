package viscosity

import (
	"errors"
	"math"
)

// solve2x2 solves
//
//	a11·x + a12·y = b1
//	a21·x + a22·y = b2
//
// by Cramer's rule.
func solve2x2(a11, a12, a21, a22, b1, b2 float64) (float64, float64, error) {
	det := a11*a22 - a12*a21
	if det == 0 || math.IsNaN(det) {
		return 0, 0, errors.New("singular system")
	}
	x := (b1*a22 - a12*b2) / det
	y := (a11*b2 - a21*b1) / det
	return x, y, nil
}
