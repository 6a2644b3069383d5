package BEM2D

import (
	"github.com/notargets/gobem/geometry2D"
)

// CircIntegralTrapez integrates around the curve with the trapezoidal rule, f is sampled
// at the element index. The integrand is periodic, so the first and last nodes coincide
// and every node carries the same weight.
func CircIntegralTrapez(f func(i int) float64, curve *geometry2D.CircleCurve) (result float64) {
	var (
		h = curve.ElementArcLength()
	)
	for i := 0; i < curve.DivNum; i++ {
		result += f(i)
	}
	result *= h
	return
}
