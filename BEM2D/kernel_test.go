package BEM2D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/integrate/quad"

	"github.com/notargets/gobem/geometry2D"
)

func TestFundamentalSolution(t *testing.T) {
	var (
		o = geometry2D.NewPoint(0, 0)
	)
	assert.InDelta(t, 0., FundamentalSolution(o, geometry2D.NewPoint(1, 0)), 1.e-15)
	assert.InDelta(t, -1./tau, FundamentalSolution(o, geometry2D.NewPoint(0, math.E)), 1.e-15)
	assert.True(t, math.IsInf(FundamentalSolution(o, o), 1))
	a, b := geometry2D.NewPoint(0.3, -1.2), geometry2D.NewPoint(2, 0.7)
	assert.Equal(t, FundamentalSolution(a, b), FundamentalSolution(b, a))

	// Radial normal at x
	assert.InDelta(t, 1./tau, FundamentalSolutionNormalDerivative(geometry2D.NewPoint(1, 0), o), 1.e-15)
	assert.InDelta(t, 1./tau,
		FundamentalSolutionNormalDerivative(geometry2D.NewPoint(0, 2), geometry2D.NewPoint(0, 1)), 1.e-15)
	assert.InDelta(t, 0.,
		FundamentalSolutionNormalDerivative(geometry2D.NewPoint(0, 2), geometry2D.NewPoint(1, 2)), 1.e-15)
	x := geometry2D.NewPoint(math.Cos(0.7), math.Sin(0.7))
	assert.InDelta(t, NormalDerivativeAlong(x, a, x), FundamentalSolutionNormalDerivative(x, a), 1.e-15)

	// Matches a centered difference of the fundamental solution along the normal
	var (
		n   = geometry2D.NewPoint(0.6, 0.8)
		eps = 1.e-6
		fd  = (FundamentalSolution(a.Plus(n.Scale(eps)), b) - FundamentalSolution(a.Minus(n.Scale(eps)), b)) / (2 * eps)
	)
	// d/dn of -ln|x-y|/2π is -(x-y)·n/(2π|x-y|²)
	assert.InDelta(t, -fd, NormalDerivativeAlong(a, b, n), 1.e-8)
}

func TestComponentValues(t *testing.T) {
	{ // Element along the x axis seen from above
		cv := NewComponentValues(geometry2D.NewPoint(0, 1), geometry2D.NewPoint(-1, 0), geometry2D.NewPoint(1, 0))
		assert.InDelta(t, 2., cv.H, 1.e-15)
		assert.InDelta(t, 1., cv.Lx1, 1.e-15)
		assert.InDelta(t, -1., cv.Lx2, 1.e-15)
		assert.InDelta(t, -1., cv.Ly1, 1.e-15)
		assert.InDelta(t, -1., cv.Ly2, 1.e-15)
		assert.InDelta(t, math.Sqrt2, cv.R1, 1.e-15)
		assert.InDelta(t, math.Sqrt2, cv.R2, 1.e-15)
		assert.InDelta(t, -math.Pi/2, cv.Theta, 1.e-15)
	}
	{ // Reversing the element flips the normal and the subtended angle
		cv := NewComponentValues(geometry2D.NewPoint(0, 1), geometry2D.NewPoint(1, 0), geometry2D.NewPoint(-1, 0))
		assert.InDelta(t, 1., cv.Ly1, 1.e-15)
		assert.InDelta(t, math.Pi/2, cv.Theta, 1.e-15)
	}
}

// The closed form off-diagonal entries agree with quadrature along the element
func TestComponentsAgainstQuadrature(t *testing.T) {
	curve, err := geometry2D.NewCircleCurve(geometry2D.NewPoint(0.2, -0.1), 1.5, 12)
	assert.NoError(t, err)
	for _, mn := range [][2]int{{0, 3}, {0, 6}, {5, 2}, {11, 0}, {4, 5}} {
		var (
			m, n = mn[0], mn[1]
			mid  = curve.Midpoint(m)
			x, y = curve.Element(n)
			cv   = NewComponentValues(mid, x, y)
			t0   = y.Minus(x).Scale(1. / cv.H)
			nVec = geometry2D.NewPoint(t0.X[1], -t0.X[0])
			at   = func(s float64) geometry2D.Point { return x.Plus(t0.Scale(s)) }
		)
		single := quad.Fixed(func(s float64) float64 {
			return FundamentalSolution(mid, at(s))
		}, 0, cv.H, 200, quad.Legendre{}, 0)
		double := quad.Fixed(func(s float64) float64 {
			return NormalDerivativeAlong(mid, at(s), nVec)
		}, 0, cv.H, 200, quad.Legendre{}, 0)
		assert.InDeltaf(t, single, UComponent(curve, m, n), 1.e-9, "U[%d,%d]", m, n)
		assert.InDeltaf(t, double, WComponent(curve, m, n), 1.e-9, "W[%d,%d]", m, n)
	}
}

// The self influence is integrated on the two halves of the element, each from the collocation
// point outwards. Substituting s = (h/2)u³ turns the log singularity at u = 0 into a smooth
// integrand that Gauss-Legendre handles. The kernel depends only on the offset from the
// collocation point, which is kept exact by evaluating about the origin.
func TestSelfInfluenceAgainstQuadrature(t *testing.T) {
	for _, geom := range []struct {
		center geometry2D.Point
		radius float64
		N      int
	}{
		{geometry2D.NewPoint(0.2, -0.1), 1.5, 12},
		{geometry2D.NewPoint(0, 0), 1, 32},
		{geometry2D.NewPoint(-3, 4), 0.01, 5},
		{geometry2D.NewPoint(1, 1), 20, 64},
	} {
		curve, err := geometry2D.NewCircleCurve(geom.center, geom.radius, geom.N)
		assert.NoError(t, err)
		for _, m := range []int{0, geom.N / 2, geom.N - 1} {
			var (
				mid    = curve.Midpoint(m)
				x, y   = curve.Element(m)
				half   = 0.5 * x.Minus(y).Norm()
				origin geometry2D.Point
				self   float64
			)
			for _, end := range []geometry2D.Point{x, y} {
				dir := end.Minus(mid).Scale(1. / end.Minus(mid).Norm())
				self += quad.Fixed(func(u float64) float64 {
					s := half * u * u * u
					return FundamentalSolution(origin, dir.Scale(s)) * 3 * half * u * u
				}, 0, 1, 200, quad.Legendre{}, 0)
			}
			assert.InDeltaf(t, self, UComponent(curve, m, m), 1.e-12*math.Max(1, math.Abs(self)),
				"r=%g N=%d U[%d,%d]", geom.radius, geom.N, m, m)
		}
	}
}
