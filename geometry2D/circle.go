package geometry2D

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidCurve = errors.New("geometry2D: invalid curve")

// CircleCurve is a circle discretized into DivNum straight boundary elements.
// Points run counter-clockwise starting at Center + (Radius, 0), element k spans
// Points[k] -> Points[(k+1) % DivNum]. A curve is never modified after construction.
type CircleCurve struct {
	Center Point
	Radius float64
	DivNum int
	Points []Point
	Box    *BoundingBox
}

func NewCircleCurve(center Point, radius float64, divNum int) (c *CircleCurve, err error) {
	if divNum < 3 {
		err = fmt.Errorf("%w: need at least 3 elements, have %d", ErrInvalidCurve, divNum)
		return
	}
	if !(radius > 0) || math.IsInf(radius, 0) {
		err = fmt.Errorf("%w: radius must be positive and finite, have %g", ErrInvalidCurve, radius)
		return
	}
	c = &CircleCurve{
		Center: center,
		Radius: radius,
		DivNum: divNum,
	}
	c.makePoints()
	c.Box = &BoundingBox{
		XMin: [2]float64{center.X[0] - radius, center.X[1] - radius},
		XMax: [2]float64{center.X[0] + radius, center.X[1] + radius},
	}
	return
}

func (c *CircleCurve) makePoints() {
	c.Points = make([]Point, c.DivNum)
	for k := range c.Points {
		theta := 2. * math.Pi * float64(k) / float64(c.DivNum)
		c.Points[k] = c.Center.Plus(NewPoint(math.Cos(theta), math.Sin(theta)).Scale(c.Radius))
	}
}

// Element returns the end points of element k, indices wrap around the curve.
func (c *CircleCurve) Element(k int) (x, y Point) {
	k = c.wrap(k)
	return c.Points[k], c.Points[c.wrap(k+1)]
}

// Midpoint is the collocation point of element k.
func (c *CircleCurve) Midpoint(k int) Point {
	x, y := c.Element(k)
	return x.Midpoint(y)
}

// OutwardNormal is the radial unit normal of the circle through p.
func (c *CircleCurve) OutwardNormal(p Point) Point {
	d := p.Minus(c.Center)
	return d.Scale(1. / d.Norm())
}

// ElementArcLength is the arc length of the circle per element.
func (c *CircleCurve) ElementArcLength() float64 {
	return 2. * math.Pi * c.Radius / float64(c.DivNum)
}

// Contains reports whether p lies strictly inside the circle.
func (c *CircleCurve) Contains(p Point) bool {
	return p.Minus(c.Center).Norm() < c.Radius
}

func (c *CircleCurve) wrap(k int) int {
	k %= c.DivNum
	if k < 0 {
		k += c.DivNum
	}
	return k
}
