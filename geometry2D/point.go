package geometry2D

import (
	"fmt"
	"math"
)

// Point is an immutable 2D position or vector.
type Point struct {
	X [2]float64
}

func NewPoint(x, y float64) Point {
	return Point{X: [2]float64{x, y}}
}

func (pt Point) Minus(rhs Point) (res Point) {
	return Point{X: [2]float64{
		pt.X[0] - rhs.X[0],
		pt.X[1] - rhs.X[1],
	}}
}
func (pt Point) Plus(rhs Point) (res Point) {
	return Point{X: [2]float64{
		pt.X[0] + rhs.X[0],
		pt.X[1] + rhs.X[1],
	}}
}
func (pt Point) Scale(a float64) (res Point) {
	return Point{X: [2]float64{
		a * pt.X[0],
		a * pt.X[1],
	}}
}
func (pt Point) Dot(rhs Point) float64 {
	return pt.X[0]*rhs.X[0] + pt.X[1]*rhs.X[1]
}
func (pt Point) Norm() float64 {
	return math.Hypot(pt.X[0], pt.X[1])
}
func (pt Point) Midpoint(rhs Point) Point {
	return pt.Plus(rhs).Scale(0.5)
}
func (pt Point) Equal(rhs Point) bool {
	return pt.X[0] == rhs.X[0] && pt.X[1] == rhs.X[1]
}
func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X[0], pt.X[1])
}
