package utils

import (
	"math"
)

// POW raises x to a small integer power by repeated squaring, falling back to math.Pow
// for exponents beyond 8 in magnitude.
func POW(x float64, pp int) (y float64) {
	var (
		p = pp
	)
	if p > 8 || p < -8 {
		return math.Pow(x, float64(p))
	}
	if p < 0 {
		return 1. / POW(x, -p)
	}
	y = 1
	for ; p > 0; p >>= 1 {
		if p&1 == 1 {
			y *= x
		}
		x *= x
	}
	return
}
