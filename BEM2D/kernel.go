package BEM2D

import (
	"math"

	"github.com/notargets/gobem/geometry2D"
)

const tau = 2. * math.Pi

// FundamentalSolution is the free space Green's function of the 2D Laplace operator,
// -ln|x-y| / 2π. Coincident points return +Inf.
func FundamentalSolution(x, y geometry2D.Point) float64 {
	return -math.Log(x.Minus(y).Norm()) / tau
}

// FundamentalSolutionNormalDerivative treats x as a point on a circle centered at the
// origin and differentiates along its radial normal (cos θx, sin θx), θx = atan2(x2, x1).
// Only valid for such circles, use NormalDerivativeAlong for any other boundary.
func FundamentalSolutionNormalDerivative(x, y geometry2D.Point) float64 {
	theta := math.Atan2(x.X[1], x.X[0])
	return NormalDerivativeAlong(x, y, geometry2D.NewPoint(math.Cos(theta), math.Sin(theta)))
}

// NormalDerivativeAlong computes (x-y)·n / (2π|x-y|²) for a unit normal n attached to x.
func NormalDerivativeAlong(x, y, normal geometry2D.Point) float64 {
	d := x.Minus(y)
	return d.Dot(normal) / tau / d.Dot(d)
}

// ComponentValues holds the local geometry between a collocation point and a source element.
type ComponentValues struct {
	Lx1, Lx2 float64 // Tangential offsets from the element end points
	Ly1, Ly2 float64 // Normal offsets from the element end points
	R1, R2   float64 // Distances to the element end points
	H        float64 // Element length
	Theta    float64 // Angle subtended by the element
}

// NewComponentValues computes the local geometry of element x -> y seen from mid.
// The element normal is the tangent rotated by -90°, outward for counter-clockwise
// elements. x and y must be distinct.
func NewComponentValues(mid, x, y geometry2D.Point) (cv ComponentValues) {
	var (
		h    = x.Minus(y).Norm()
		tVec = y.Minus(x).Scale(1. / h)
		nVec = geometry2D.NewPoint(tVec.X[1], -tVec.X[0])
		dx   = mid.Minus(x)
		dy   = mid.Minus(y)
	)
	cv = ComponentValues{
		Lx1: dx.Dot(tVec),
		Lx2: dy.Dot(tVec),
		Ly1: dx.Dot(nVec),
		Ly2: dy.Dot(nVec),
		R1:  dx.Norm(),
		R2:  dy.Norm(),
		H:   h,
	}
	cv.Theta = math.Atan2(cv.Ly2, cv.Lx2) - math.Atan2(cv.Ly1, cv.Lx1)
	return
}
